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
	"strings"
)

// ctdVariables are the variables measured by the glider CTD.
var ctdVariables = []string{"temperature", "conductivity", "salinity", "density"}

// ctdAttribute is an attribute required on every CTD variable.
type ctdAttribute struct {
	name    string
	numeric bool
}

var ctdAttributes = []ctdAttribute{
	{name: "units"},
	{name: "long_name"},
	{name: "standard_name"},
	{name: "observation_type"},
	{name: "platform"},
	{name: "instrument"},
	{name: "ancillary_variables"},
	{name: "valid_min", numeric: true},
	{name: "valid_max", numeric: true},
	{name: "_FillValue", numeric: true},
	{name: "accuracy", numeric: true},
	{name: "precision", numeric: true},
	{name: "resolution", numeric: true},
}

// CheckCTDVariables checks that the CTD variables exist and carry the
// metadata required for archiving, and that their ancillary_variables
// point at QC variables that exist. Each variable and each of its required
// attributes is one rule; a missing variable fails all of its rules.
func (c *Checker) CheckCTDVariables(ds Dataset) *Result {
	var s scorer
	for _, v := range ctdVariables {
		if !ds.HasVariable(v) {
			s.fail("variable %s is missing", v)
			for range ctdAttributes {
				s.score(false)
			}
			continue
		}
		s.score(true)
		for _, attr := range ctdAttributes {
			s.check(ctdAttributeProblems(ds, v, attr))
		}
	}
	return s.result(CheckNameCTDVariables, High)
}

func ctdAttributeProblems(ds Dataset, v string, attr ctdAttribute) []string {
	a, ok := ds.VariableAttribute(v, attr.name)
	if !ok {
		return []string{fmt.Sprintf("variable %s must have a %s attribute", v, attr.name)}
	}
	if attr.numeric {
		if _, ok := attrFloat(a); !ok {
			return []string{fmt.Sprintf("variable %s attribute %s must be numeric", v, attr.name)}
		}
		return nil
	}
	str, ok := a.(string)
	if !ok || strings.TrimSpace(str) == "" {
		return []string{fmt.Sprintf("variable %s attribute %s can not be empty", v, attr.name)}
	}
	if attr.name != "ancillary_variables" {
		return nil
	}
	var o []string
	for _, ref := range splitNames(str) {
		if !ds.HasVariable(ref) {
			o = append(o, fmt.Sprintf("variable %s ancillary_variables references %s which is not a variable", v, ref))
		}
	}
	return o
}
