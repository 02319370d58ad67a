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
	"math"

	"github.com/gonum/floats"
)

// findCoordinate returns the variable holding a coordinate: the first of
// names that exists, or else the first variable whose standard_name is
// standardName. It returns "" if there is none.
func findCoordinate(ds Dataset, standardName string, names ...string) string {
	for _, n := range names {
		if ds.HasVariable(n) {
			return n
		}
	}
	for _, v := range ds.Variables() {
		if sn, ok := attrString(ds, v, "standard_name"); ok && sn == standardName {
			return v
		}
	}
	return ""
}

func latitudeVariable(ds Dataset) string {
	return findCoordinate(ds, "latitude", "lat", "latitude")
}

func longitudeVariable(ds Dataset) string {
	return findCoordinate(ds, "longitude", "lon", "longitude")
}

// validValues returns the values of v that are not fill values.
func validValues(ds Dataset, v string) ([]float64, error) {
	vals, err := ds.Values(v)
	if err != nil {
		return nil, err
	}
	fill := fillValue(ds, v)
	o := make([]float64, 0, len(vals))
	for _, x := range vals {
		if x == fill || (math.IsNaN(x) && math.IsNaN(fill)) {
			continue
		}
		o = append(o, x)
	}
	return o, nil
}

// coordinateProblems describes why the values of coordinate v are not
// plausible, if they are not.
func coordinateProblems(ds Dataset, v, kind string, min, max float64) []string {
	if v == "" {
		return []string{fmt.Sprintf("%s variable is missing", kind)}
	}
	vals, err := validValues(ds, v)
	if err != nil {
		return []string{fmt.Sprintf("%s variable %s could not be read: %v", kind, v, err)}
	}
	if len(vals) == 0 {
		return []string{fmt.Sprintf("%s variable %s has no valid values", kind, v)}
	}
	finite := make([]float64, 0, len(vals))
	for _, x := range vals {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			finite = append(finite, x)
		}
	}
	var o []string
	if len(finite) != len(vals) {
		o = append(o, fmt.Sprintf("%s variable %s has %d non-finite values", kind, v, len(vals)-len(finite)))
	}
	if len(finite) == 0 {
		return o
	}
	lo, hi := floats.Min(finite), floats.Max(finite)
	if lo < min || hi > max {
		o = append(o, fmt.Sprintf("%s variable %s has values from %g to %g, outside of [%g, %g]", kind, v, lo, hi, min, max))
	}
	return o
}

// CheckLocations checks that the latitude and longitude variables hold
// finite values within geophysical bounds. All coordinate problems are
// scored as a single rule.
func (c *Checker) CheckLocations(ds Dataset) *Result {
	var s scorer
	problems := coordinateProblems(ds, latitudeVariable(ds), "latitude", -90, 90)
	problems = append(problems, coordinateProblems(ds, longitudeVariable(ds), "longitude", -180, 180)...)
	s.check(problems)
	return s.result(CheckNameLocations, High)
}

// CheckValidLon checks that the longitude variable declares valid_min and
// valid_max bounds with -180 <= valid_min < valid_max <= 180.
func (c *Checker) CheckValidLon(ds Dataset) *Result {
	var s scorer
	lon := longitudeVariable(ds)
	if lon == "" {
		s.fail("longitude variable is missing")
		return s.result(CheckNameValidLon, Medium)
	}
	var problems []string
	bound := func(name string) float64 {
		a, ok := ds.VariableAttribute(lon, name)
		if !ok {
			problems = append(problems, fmt.Sprintf("variable %s must have a %s attribute", lon, name))
			return math.NaN()
		}
		f, ok := attrFloat(a)
		if !ok {
			problems = append(problems, fmt.Sprintf("variable %s attribute %s must be numeric", lon, name))
		}
		return f
	}
	min, max := bound("valid_min"), bound("valid_max")
	if len(problems) == 0 && !(-180 <= min && min < max && max <= 180) {
		problems = append(problems, fmt.Sprintf("variable %s valid_min %g and valid_max %g must satisfy -180 <= valid_min < valid_max <= 180", lon, min, max))
	}
	s.check(problems)
	return s.result(CheckNameValidLon, Medium)
}
