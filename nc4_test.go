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
	"io/ioutil"
	"path/filepath"
	"reflect"
	"testing"
)

func TestOpenFileClassic(t *testing.T) {
	ds, f, err := OpenFile(writeTestCDF(t))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, ok := ds.(*CDFDataset); !ok {
		t.Fatalf("dataset is %T, want *CDFDataset", ds)
	}
	lon, err := ds.Values("lon")
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{-73.5, -73.6, -73.7}; !reflect.DeepEqual(lon, want) {
		t.Errorf("lon = %v, want %v", lon, want)
	}
}

func TestOpenFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := OpenFile(filepath.Join(dir, "missing.nc")); err == nil {
		t.Error("expected an error for a missing file")
	}

	// An HDF5 signature followed by garbage is not a NetCDF-4 file.
	bad := filepath.Join(dir, "bad.nc")
	if err := ioutil.WriteFile(bad, append(append([]byte{}, hdf5Magic...), "not a superblock"...), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := OpenFile(bad); err == nil {
		t.Error("expected an error for a corrupt NetCDF-4 file")
	}

	short := filepath.Join(dir, "short.nc")
	if err := ioutil.WriteFile(short, []byte("CD"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := OpenFile(short); err == nil {
		t.Error("expected an error for a truncated file")
	}
}

func TestNC4Types(t *testing.T) {
	for cdl, want := range map[string]DType{
		"ubyte": Byte, "string": Char, "ushort": UShort, "int64": Int64, "double": Double, "compound": Invalid,
	} {
		if got := nc4Types[cdl]; got != want {
			t.Errorf("%s: dtype %v, want %v", cdl, got, want)
		}
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		v    interface{}
		want []float64
		err  bool
	}{
		{v: int32(4), want: []float64{4}},
		{v: []float32{1.5, -2}, want: []float64{1.5, -2}},
		{v: [][]int16{{1, 2}, {3, 4}}, want: []float64{1, 2, 3, 4}},
		{v: [][]uint64{{7}, {}}, want: []float64{7}},
		{v: []interface{}{int8(-1), uint8(9)}, want: []float64{-1, 9}},
		{v: []string{"a"}, err: true},
	}
	for _, test := range tests {
		got, err := flatten(nil, reflect.ValueOf(test.v))
		if test.err {
			if err == nil {
				t.Errorf("flatten(%#v): expected an error", test.v)
			}
			continue
		}
		if err != nil {
			t.Errorf("flatten(%#v): %v", test.v, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("flatten(%#v) = %v, want %v", test.v, got, test.want)
		}
	}
}
