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

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// NC4Dataset is a Dataset backed by a NetCDF-4 (HDF5) file. Only the root
// group is checked.
type NC4Dataset struct {
	g     api.Group
	names []string
	vars  map[string]api.VarGetter
}

// OpenNC4File opens the NetCDF-4 file at path. The dataset should be closed
// once checking is finished.
func OpenNC4File(path string) (*NC4Dataset, error) {
	g, err := netcdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("glidercheck: opening netcdf file: %v (%s)", err, path)
	}
	d := &NC4Dataset{g: g, vars: make(map[string]api.VarGetter)}
	for _, v := range g.ListVariables() {
		vg, err := g.GetVarGetter(v)
		if err != nil {
			g.Close()
			return nil, fmt.Errorf("glidercheck: variable %q: %v (%s)", v, err, path)
		}
		d.names = append(d.names, v)
		d.vars[v] = vg
	}
	return d, nil
}

// Close releases the file.
func (d *NC4Dataset) Close() error {
	d.g.Close()
	return nil
}

// Variables implements Dataset.
func (d *NC4Dataset) Variables() []string { return d.names }

// HasVariable implements Dataset.
func (d *NC4Dataset) HasVariable(name string) bool {
	_, ok := d.vars[name]
	return ok
}

func (d *NC4Dataset) attributes(v string) api.AttributeMap {
	if v == "" {
		return d.g.Attributes()
	}
	vg, ok := d.vars[v]
	if !ok {
		return nil
	}
	return vg.Attributes()
}

// GlobalAttribute implements Dataset.
func (d *NC4Dataset) GlobalAttribute(name string) (interface{}, bool) {
	return d.VariableAttribute("", name)
}

// VariableAttribute implements Dataset.
func (d *NC4Dataset) VariableAttribute(v, name string) (interface{}, bool) {
	am := d.attributes(v)
	if am == nil {
		return nil, false
	}
	return am.Get(name)
}

// Attributes implements Dataset.
func (d *NC4Dataset) Attributes(v string) []string {
	am := d.attributes(v)
	if am == nil {
		return nil
	}
	return am.Keys()
}

// nc4Types maps CDL type names to data types.
var nc4Types = map[string]DType{
	"byte":   Byte,
	"ubyte":  Byte,
	"char":   Char,
	"string": Char,
	"short":  Short,
	"ushort": UShort,
	"int":    Int,
	"uint":   UInt,
	"int64":  Int64,
	"uint64": UInt64,
	"float":  Float,
	"double": Double,
}

// DType implements Dataset. User-defined types are Invalid.
func (d *NC4Dataset) DType(v string) DType {
	vg, ok := d.vars[v]
	if !ok {
		return Invalid
	}
	return nc4Types[vg.Type()]
}

// Dimensions implements Dataset.
func (d *NC4Dataset) Dimensions(v string) []string {
	vg, ok := d.vars[v]
	if !ok {
		return nil
	}
	return vg.Dimensions()
}

// Values implements Dataset.
func (d *NC4Dataset) Values(v string) ([]float64, error) {
	vg, ok := d.vars[v]
	if !ok {
		return nil, fmt.Errorf("glidercheck: no such variable %q", v)
	}
	if dt := d.DType(v); dt == Char || dt == Invalid {
		return nil, fmt.Errorf("glidercheck: variable %q of type %v is not numeric", v, dt)
	}
	vals, err := vg.Values()
	if err != nil {
		return nil, fmt.Errorf("glidercheck: reading variable %q: %v", v, err)
	}
	o, err := flatten(nil, reflect.ValueOf(vals))
	if err != nil {
		return nil, fmt.Errorf("glidercheck: reading variable %q: %v", v, err)
	}
	return o, nil
}

// flatten appends the numbers in v, which may be a scalar or a slice nested
// to any depth, to o.
func flatten(o []float64, v reflect.Value) ([]float64, error) {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		var err error
		for i := 0; i < v.Len(); i++ {
			if o, err = flatten(o, v.Index(i)); err != nil {
				return nil, err
			}
		}
		return o, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return append(o, float64(v.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return append(o, float64(v.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return append(o, v.Float()), nil
	case reflect.Interface:
		return flatten(o, v.Elem())
	}
	return nil, fmt.Errorf("unsupported value type %v", v.Type())
}

// hdf5Magic is the signature that starts a NetCDF-4 file.
var hdf5Magic = []byte("\x89HDF\r\n\x1a\n")

// OpenFile opens the NetCDF classic or NetCDF-4 file at path. The returned
// closer should be closed once checking is finished.
func OpenFile(path string) (Dataset, io.Closer, error) {
	ff, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("glidercheck: %v", err)
	}
	magic := make([]byte, len(hdf5Magic))
	n, _ := io.ReadFull(ff, magic)
	ff.Close()
	if bytes.Equal(magic[:n], hdf5Magic) {
		d, err := OpenNC4File(path)
		if err != nil {
			return nil, nil, err
		}
		return d, d, nil
	}
	d, f, err := OpenCDFFile(path)
	if err != nil {
		return nil, nil, err
	}
	return d, f, nil
}
