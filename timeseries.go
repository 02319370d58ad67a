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
	"regexp"
	"strings"
)

var timeUnitsRE = regexp.MustCompile(`^\s*[A-Za-z]+\s+since\s+\S+`)

// timeVariables returns the time coordinate variables: "time" and any
// variable with standard_name time or axis T.
func timeVariables(ds Dataset) []string {
	var o []string
	seen := make(map[string]bool)
	add := func(v string) {
		if !seen[v] {
			seen[v] = true
			o = append(o, v)
		}
	}
	if ds.HasVariable("time") {
		add("time")
	}
	for _, v := range ds.Variables() {
		sn, _ := attrString(ds, v, "standard_name")
		axis, _ := attrString(ds, v, "axis")
		if sn == "time" || axis == "T" {
			add(v)
		}
	}
	return o
}

// CheckTimeSeriesVariables checks the time coordinate variables. Each
// scores seven rules for its structure plus one rule for every variable
// listed in its ancillary_variables attribute, which must exist.
func (c *Checker) CheckTimeSeriesVariables(ds Dataset) *Result {
	var s scorer
	vars := timeVariables(ds)
	if len(vars) == 0 {
		s.fail("variable time is missing")
	}
	for _, v := range vars {
		s.score(true)
		units, _ := attrString(ds, v, "units")
		s.assert(units != "", "variable %s must have a units attribute", v)
		s.assert(timeUnitsRE.MatchString(units), "variable %s units %q must be of the form '<unit> since <reference time>'", v, units)
		sn, _ := attrString(ds, v, "standard_name")
		s.assert(sn == "time", "variable %s standard_name must be time", v)
		ln, _ := attrString(ds, v, "long_name")
		s.assert(strings.TrimSpace(ln) != "", "variable %s must have a long_name attribute", v)
		cal, _ := attrString(ds, v, "calendar")
		s.assert(strings.TrimSpace(cal) != "", "variable %s must have a calendar attribute", v)
		axis, _ := attrString(ds, v, "axis")
		s.assert(axis == "T", "variable %s axis must be T", v)

		anc, _ := attrString(ds, v, "ancillary_variables")
		for _, ref := range splitNames(anc) {
			s.assert(ds.HasVariable(ref), "Invalid ancillary_variables attribute for %s, %s is not a variable", v, ref)
		}
	}
	return s.result(CheckNameTimeSeriesVariables, Medium)
}
