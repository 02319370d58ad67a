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
	"strings"
)

// qcSuffix marks quality control variables.
const qcSuffix = "_qc"

var qcAttributes = []string{"flag_meanings", "flag_values", "long_name", "standard_name"}

// CheckQCVariables checks that every QC variable defines its flags and
// names. Each QC variable scores one rule per required attribute. The
// result is nil if the dataset has no QC variables.
func (c *Checker) CheckQCVariables(ds Dataset) *Result {
	var s scorer
	for _, v := range ds.Variables() {
		if !strings.HasSuffix(v, qcSuffix) {
			continue
		}
		for _, attr := range qcAttributes {
			_, ok := ds.VariableAttribute(v, attr)
			s.assert(ok, "variable %s must have a %s attribute", v, attr)
		}
	}
	if s.total == 0 {
		return nil
	}
	return s.result(CheckNameQCVariables, Medium)
}
