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
	"reflect"
	"sort"
	"testing"
)

func TestCheckQCVariables(t *testing.T) {
	c, _ := newTestChecker(t)
	checkValue(t, c.CheckQCVariables(gliderDataset()), 16, 16)

	t.Run("missing attributes", func(t *testing.T) {
		d := gliderDataset()
		addQC(d, "depth_qc")
		addQC(d, "pressure_qc")
		d.RemoveAttribute("depth_qc", "flag_meanings")
		d.RemoveAttribute("depth_qc", "flag_values")
		d.RemoveAttribute("pressure_qc", "long_name")
		d.RemoveAttribute("pressure_qc", "standard_name")

		r := c.CheckQCVariables(d)
		checkValue(t, r, 20, 24)
		msgs := append([]string(nil), r.Msgs...)
		sort.Strings(msgs)
		want := []string{
			"variable depth_qc must have a flag_meanings attribute",
			"variable depth_qc must have a flag_values attribute",
			"variable pressure_qc must have a long_name attribute",
			"variable pressure_qc must have a standard_name attribute",
		}
		if !reflect.DeepEqual(msgs, want) {
			t.Errorf("msgs = %q, want %q", msgs, want)
		}
	})

	t.Run("flag count mismatch", func(t *testing.T) {
		// Only the presence of flag_values is scored.
		d := gliderDataset()
		d.SetAttribute("salinity_qc", "flag_values", []int8{1, 4, 9})
		r := c.CheckQCVariables(d)
		checkValue(t, r, 16, 16)
		if len(r.Msgs) != 0 {
			t.Errorf("msgs = %q, want none", r.Msgs)
		}
	})

	t.Run("no qc variables", func(t *testing.T) {
		if r := c.CheckQCVariables(NewMockTimeSeries(3)); r != nil {
			t.Errorf("result = %v, want nil", r)
		}
	})
}
