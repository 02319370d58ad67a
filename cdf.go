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
	"fmt"
	"io"
	"os"

	"github.com/ctessum/cdf"
)

// CDFDataset is a Dataset backed by a NetCDF classic (CDF-1 or CDF-2) file.
type CDFDataset struct {
	f       *cdf.File
	vars    map[string]struct{}
	numRecs int64
}

// OpenCDF reads the NetCDF header from rw.
func OpenCDF(rw cdf.ReaderWriterAt) (*CDFDataset, error) {
	f, err := cdf.Open(rw)
	if err != nil {
		return nil, fmt.Errorf("glidercheck: opening netcdf file: %v", err)
	}
	d := &CDFDataset{f: f, vars: make(map[string]struct{})}
	if d.numRecs = f.Header.NumRecs(fileSize(rw)); d.numRecs < 0 {
		d.numRecs = 0
	}
	for _, v := range f.Header.Variables() {
		d.vars[v] = struct{}{}
	}
	return d, nil
}

// OpenCDFFile opens the NetCDF file at path. The returned file should be
// closed by the caller once checking is finished.
func OpenCDFFile(path string) (*CDFDataset, *os.File, error) {
	ff, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("glidercheck: %v", err)
	}
	d, err := OpenCDF(ff)
	if err != nil {
		ff.Close()
		return nil, nil, fmt.Errorf("%v (%s)", err, path)
	}
	return d, ff, nil
}

// Variables implements Dataset.
func (d *CDFDataset) Variables() []string { return d.f.Header.Variables() }

// HasVariable implements Dataset.
func (d *CDFDataset) HasVariable(name string) bool {
	_, ok := d.vars[name]
	return ok
}

// GlobalAttribute implements Dataset.
func (d *CDFDataset) GlobalAttribute(name string) (interface{}, bool) {
	a := d.f.Header.GetAttribute("", name)
	return a, a != nil
}

// VariableAttribute implements Dataset.
func (d *CDFDataset) VariableAttribute(v, name string) (interface{}, bool) {
	if !d.HasVariable(v) {
		return nil, false
	}
	a := d.f.Header.GetAttribute(v, name)
	return a, a != nil
}

// Attributes implements Dataset.
func (d *CDFDataset) Attributes(v string) []string {
	if v != "" && !d.HasVariable(v) {
		return nil
	}
	return d.f.Header.Attributes(v)
}

// DType implements Dataset.
func (d *CDFDataset) DType(v string) DType {
	if !d.HasVariable(v) {
		return Invalid
	}
	return DTypeOf(d.f.Header.ZeroValue(v, 0))
}

// Dimensions implements Dataset.
func (d *CDFDataset) Dimensions(v string) []string {
	if !d.HasVariable(v) {
		return nil
	}
	return d.f.Header.Dimensions(v)
}

// Values implements Dataset.
func (d *CDFDataset) Values(v string) ([]float64, error) {
	if !d.HasVariable(v) {
		return nil, fmt.Errorf("glidercheck: no such variable %q", v)
	}
	if dt := d.DType(v); dt == Char || dt == Invalid {
		return nil, fmt.Errorf("glidercheck: variable %q of type %v is not numeric", v, dt)
	}
	lengths := d.f.Header.Lengths(v)
	if !d.f.Header.IsRecordVariable(v) {
		return d.read(v, nil, nil, product(lengths))
	}
	// Record variables are read one record at a time so that each read is
	// bounded by the record's extent.
	var o []float64
	for rec := 0; rec < int(d.numRecs); rec++ {
		begin := make([]int, len(lengths))
		end := make([]int, len(lengths))
		begin[0], end[0] = rec, rec
		for i := 1; i < len(lengths); i++ {
			end[i] = lengths[i] - 1
		}
		vals, err := d.read(v, begin, end, product(lengths[1:]))
		if err != nil {
			return nil, err
		}
		o = append(o, vals...)
	}
	return o, nil
}

func (d *CDFDataset) read(v string, begin, end []int, n int) ([]float64, error) {
	if n == 0 {
		return nil, nil
	}
	r := d.f.Reader(v, begin, end)
	buf := r.Zero(n)
	if _, err := r.Read(buf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("glidercheck: reading variable %q: %v", v, err)
	}
	o, _ := attrFloats(buf)
	return o, nil
}

func product(l []int) int {
	n := 1
	for _, v := range l {
		n *= v
	}
	return n
}

// sizer is implemented by *os.File.
type sizer interface {
	Stat() (os.FileInfo, error)
}

// fileSize returns the size of rw, or -1 if it cannot be determined.
func fileSize(rw cdf.ReaderWriterAt) int64 {
	switch t := rw.(type) {
	case sizer:
		fi, err := t.Stat()
		if err != nil {
			return -1
		}
		return fi.Size()
	case interface{ Size() int64 }:
		return t.Size()
	}
	return -1
}
