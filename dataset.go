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

// Package glidercheck scores oceanographic glider NetCDF datasets against the
// IOOS Glider DAC and NCEI archiving conventions. Each check inspects the
// variables and attributes of a dataset and reports how many of its rules
// passed, together with human-readable diagnostics.
package glidercheck

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Version gives the version number.
const Version = "1.2.0"

// Dataset is read-only access to the contents of a NetCDF dataset.
// Implementations must not panic on missing variables or attributes;
// absent values are reported through the boolean return values.
type Dataset interface {
	// Variables returns the variable names in file order.
	Variables() []string

	// HasVariable returns whether the named variable exists.
	HasVariable(name string) bool

	// GlobalAttribute returns the value of a global attribute.
	GlobalAttribute(name string) (interface{}, bool)

	// VariableAttribute returns the value of attribute name of variable v.
	VariableAttribute(v, name string) (interface{}, bool)

	// Attributes returns the attribute names of variable v, or the global
	// attribute names if v is empty.
	Attributes(v string) []string

	// DType returns the storage type of variable v.
	DType(v string) DType

	// Dimensions returns the dimension names of variable v.
	Dimensions(v string) []string

	// Values returns the values of variable v widened to float64.
	Values(v string) ([]float64, error)
}

// DType is a NetCDF data type.
type DType int

// The NetCDF classic data types.
const (
	Invalid DType = iota
	Byte
	Char
	Short
	Int
	Float
	Double

	// Integer types added by NetCDF-4. Unsigned bytes are reported as Byte
	// and strings as Char.
	UShort
	UInt
	Int64
	UInt64
)

var dtypeNames = [...]string{"invalid", "byte", "char", "short", "int", "float", "double",
	"ushort", "uint", "int64", "uint64"}

func (d DType) String() string {
	if d < Invalid || d > UInt64 {
		return dtypeNames[Invalid]
	}
	return dtypeNames[d]
}

// DTypeOf returns the NetCDF type that value would be stored as. Slices
// report the type of their elements.
func DTypeOf(value interface{}) DType {
	switch value.(type) {
	case int8, uint8, []int8, []uint8:
		return Byte
	case string, []string:
		return Char
	case int16, []int16:
		return Short
	case int32, int, []int32, []int:
		return Int
	case float32, []float32:
		return Float
	case float64, []float64:
		return Double
	case uint16, []uint16:
		return UShort
	case uint32, []uint32:
		return UInt
	case int64, []int64:
		return Int64
	case uint64, []uint64:
		return UInt64
	default:
		return Invalid
	}
}

// defaultFill returns the NetCDF default fill value for d.
func defaultFill(d DType) float64 {
	switch d {
	case Byte:
		return -127
	case Short:
		return -32767
	case Int:
		return -2147483647
	case Float:
		return float64(float32(9.9692099683868690e+36))
	case UShort:
		return 65535
	case UInt:
		return 4294967295
	case Int64:
		return -9223372036854775806
	case UInt64:
		return 18446744073709551614
	default:
		return 9.9692099683868690e+36
	}
}

// fillValue returns the fill value of variable v: its _FillValue attribute
// when one is set and numeric, otherwise the default for its type.
func fillValue(ds Dataset, v string) float64 {
	if a, ok := ds.VariableAttribute(v, "_FillValue"); ok {
		if f, ok := attrFloat(a); ok {
			return f
		}
	}
	return defaultFill(ds.DType(v))
}

// attrString returns the string value of a variable attribute. Non-string
// attributes report false.
func attrString(ds Dataset, v, name string) (string, bool) {
	a, ok := ds.VariableAttribute(v, name)
	if !ok {
		return "", false
	}
	s, ok := a.(string)
	return s, ok
}

// globalString returns a global attribute as a string. Missing or non-string
// attributes return the empty string.
func globalString(ds Dataset, name string) string {
	a, ok := ds.GlobalAttribute(name)
	if !ok {
		return ""
	}
	s, _ := a.(string)
	return s
}

// attrFloats widens a numeric attribute, scalar or slice, to []float64.
func attrFloats(a interface{}) ([]float64, bool) {
	switch t := a.(type) {
	case nil, string, []string:
		return nil, false
	case []float64:
		return t, true
	case []float32:
		o := make([]float64, len(t))
		for i, v := range t {
			o[i] = float64(v)
		}
		return o, true
	case []int32:
		o := make([]float64, len(t))
		for i, v := range t {
			o[i] = float64(v)
		}
		return o, true
	case []int16:
		o := make([]float64, len(t))
		for i, v := range t {
			o[i] = float64(v)
		}
		return o, true
	case []int8:
		o := make([]float64, len(t))
		for i, v := range t {
			o[i] = float64(v)
		}
		return o, true
	case []uint8:
		o := make([]float64, len(t))
		for i, v := range t {
			o[i] = float64(v)
		}
		return o, true
	case []int:
		o := make([]float64, len(t))
		for i, v := range t {
			o[i] = float64(v)
		}
		return o, true
	case []uint16:
		o := make([]float64, len(t))
		for i, v := range t {
			o[i] = float64(v)
		}
		return o, true
	case []uint32:
		o := make([]float64, len(t))
		for i, v := range t {
			o[i] = float64(v)
		}
		return o, true
	case []int64:
		o := make([]float64, len(t))
		for i, v := range t {
			o[i] = float64(v)
		}
		return o, true
	case []uint64:
		o := make([]float64, len(t))
		for i, v := range t {
			o[i] = float64(v)
		}
		return o, true
	}
	f, err := cast.ToFloat64E(a)
	if err != nil {
		return nil, false
	}
	return []float64{f}, true
}

// attrFloat returns the first value of a numeric attribute.
func attrFloat(a interface{}) (float64, bool) {
	f, ok := attrFloats(a)
	if !ok || len(f) == 0 {
		return math.NaN(), false
	}
	return f[0], true
}

// splitNames splits a variable reference list such as an
// ancillary_variables attribute into its names.
func splitNames(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
