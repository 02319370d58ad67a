/*
Copyright © 2026 the glidercheck authors.
This file is part of glidercheck.

glidercheck is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

glidercheck is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with glidercheck.  If not, see <http://www.gnu.org/licenses/>.
*/

package glidercheck

import "fmt"

type memVariable struct {
	dims   []string
	values interface{}
	attrs  map[string]interface{}
	order  []string
}

func (v *memVariable) set(name string, value interface{}) {
	if _, ok := v.attrs[name]; !ok {
		v.order = append(v.order, name)
	}
	v.attrs[name] = value
}

func (v *memVariable) remove(name string) {
	if _, ok := v.attrs[name]; !ok {
		return
	}
	delete(v.attrs, name)
	for i, n := range v.order {
		if n == name {
			v.order = append(v.order[:i], v.order[i+1:]...)
			break
		}
	}
}

// MemDataset is an in-memory Dataset. Its zero value is not usable;
// use NewMemDataset.
type MemDataset struct {
	global *memVariable
	vars   map[string]*memVariable
	names  []string
}

// NewMemDataset returns an empty in-memory dataset.
func NewMemDataset() *MemDataset {
	return &MemDataset{
		global: &memVariable{attrs: make(map[string]interface{})},
		vars:   make(map[string]*memVariable),
	}
}

// NewMockTimeSeries returns a dataset holding a minimal glider time series:
// time, lat, lon and depth coordinate variables of length n with their
// CF coordinate attributes set.
func NewMockTimeSeries(n int) *MemDataset {
	d := NewMemDataset()
	d.SetGlobal("featureType", "timeSeries")
	coord := func(name string, f func(i int) float64) {
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = f(i)
		}
		d.AddVariable(name, []string{"time"}, vals)
	}
	coord("time", func(i int) float64 { return 1.5e9 + float64(i)*60 })
	d.SetAttribute("time", "standard_name", "time")
	d.SetAttribute("time", "long_name", "Time")
	d.SetAttribute("time", "units", "seconds since 1970-01-01T00:00:00Z")
	d.SetAttribute("time", "calendar", "gregorian")
	d.SetAttribute("time", "axis", "T")

	coord("lat", func(i int) float64 { return 38.5 + float64(i)*0.001 })
	d.SetAttribute("lat", "standard_name", "latitude")
	d.SetAttribute("lat", "units", "degrees_north")
	d.SetAttribute("lat", "axis", "Y")

	coord("lon", func(i int) float64 { return -73.5 - float64(i)*0.001 })
	d.SetAttribute("lon", "standard_name", "longitude")
	d.SetAttribute("lon", "units", "degrees_east")
	d.SetAttribute("lon", "axis", "X")

	coord("depth", func(i int) float64 { return float64(i % 100) })
	d.SetAttribute("depth", "standard_name", "depth")
	d.SetAttribute("depth", "units", "m")
	d.SetAttribute("depth", "positive", "down")
	d.SetAttribute("depth", "axis", "Z")
	return d
}

// SetGlobal sets a global attribute.
func (d *MemDataset) SetGlobal(name string, value interface{}) { d.global.set(name, value) }

// RemoveGlobal deletes a global attribute if it exists.
func (d *MemDataset) RemoveGlobal(name string) { d.global.remove(name) }

// AddVariable adds or replaces variable name. values is a scalar or a slice
// of one of the NetCDF numeric types, or a string for char variables;
// its type sets the variable's DType.
func (d *MemDataset) AddVariable(name string, dims []string, values interface{}) {
	if _, ok := d.vars[name]; !ok {
		d.names = append(d.names, name)
	}
	d.vars[name] = &memVariable{
		dims:   dims,
		values: values,
		attrs:  make(map[string]interface{}),
	}
}

// SetAttribute sets attribute name of variable v. Like cdf.Header.AddAttribute
// it panics if the variable does not exist.
func (d *MemDataset) SetAttribute(v, name string, value interface{}) {
	vv, ok := d.vars[v]
	if !ok {
		panic(fmt.Sprintf("glidercheck: no such variable %q", v))
	}
	vv.set(name, value)
}

// RemoveAttribute deletes attribute name of variable v if it exists.
func (d *MemDataset) RemoveAttribute(v, name string) {
	if vv, ok := d.vars[v]; ok {
		vv.remove(name)
	}
}

// Variables implements Dataset.
func (d *MemDataset) Variables() []string {
	o := make([]string, len(d.names))
	copy(o, d.names)
	return o
}

// HasVariable implements Dataset.
func (d *MemDataset) HasVariable(name string) bool {
	_, ok := d.vars[name]
	return ok
}

// GlobalAttribute implements Dataset.
func (d *MemDataset) GlobalAttribute(name string) (interface{}, bool) {
	a, ok := d.global.attrs[name]
	return a, ok
}

// VariableAttribute implements Dataset.
func (d *MemDataset) VariableAttribute(v, name string) (interface{}, bool) {
	vv, ok := d.vars[v]
	if !ok {
		return nil, false
	}
	a, ok := vv.attrs[name]
	return a, ok
}

// Attributes implements Dataset.
func (d *MemDataset) Attributes(v string) []string {
	vv := d.global
	if v != "" {
		var ok bool
		if vv, ok = d.vars[v]; !ok {
			return nil
		}
	}
	o := make([]string, len(vv.order))
	copy(o, vv.order)
	return o
}

// DType implements Dataset.
func (d *MemDataset) DType(v string) DType {
	vv, ok := d.vars[v]
	if !ok {
		return Invalid
	}
	return DTypeOf(vv.values)
}

// Dimensions implements Dataset.
func (d *MemDataset) Dimensions(v string) []string {
	vv, ok := d.vars[v]
	if !ok {
		return nil
	}
	return vv.dims
}

// Values implements Dataset.
func (d *MemDataset) Values(v string) ([]float64, error) {
	vv, ok := d.vars[v]
	if !ok {
		return nil, fmt.Errorf("glidercheck: no such variable %q", v)
	}
	f, ok := attrFloats(vv.values)
	if !ok {
		return nil, fmt.Errorf("glidercheck: variable %q of type %v is not numeric", v, DTypeOf(vv.values))
	}
	return f, nil
}
