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
	"testing"
)

func TestCheckValidMinMaxDtype(t *testing.T) {
	c, _ := newTestChecker(t)
	d := gliderDataset()
	checkValue(t, c.CheckValidMinDtype(d), 6, 6)
	checkValue(t, c.CheckValidMaxDtype(d), 6, 6)

	d.SetAttribute("lat", "valid_min", float32(-90))
	d.SetAttribute("temperature", "valid_max", 100.0)
	d.SetAttribute("salinity", "valid_max", int16(40))
	// Char variables are not checked.
	d.AddVariable("platform_name", []string{"strlen"}, "ru28")
	d.SetAttribute("platform_name", "valid_min", 0.0)

	r := c.CheckValidMinDtype(d)
	checkValue(t, r, 5, 6)
	want := []string{"variable lat valid_min dtype float does not match variable dtype double"}
	if !reflect.DeepEqual(r.Msgs, want) {
		t.Errorf("msgs = %q, want %q", r.Msgs, want)
	}

	r = c.CheckValidMaxDtype(d)
	checkValue(t, r, 4, 6)
	want = []string{
		"variable temperature valid_max dtype double does not match variable dtype float",
		"variable salinity valid_max dtype short does not match variable dtype float",
	}
	if !reflect.DeepEqual(r.Msgs, want) {
		t.Errorf("msgs = %q, want %q", r.Msgs, want)
	}

	if r := c.CheckValidMinDtype(NewMockTimeSeries(3)); r != nil {
		t.Errorf("result = %v, want nil", r)
	}
}
