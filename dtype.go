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

// CheckValidMinDtype checks that the valid_min attribute of every numeric
// variable is stored with the same type as the variable's data.
func (c *Checker) CheckValidMinDtype(ds Dataset) *Result {
	return attributeDtype(ds, "valid_min", CheckNameValidMinDtype)
}

// CheckValidMaxDtype checks that the valid_max attribute of every numeric
// variable is stored with the same type as the variable's data.
func (c *Checker) CheckValidMaxDtype(ds Dataset) *Result {
	return attributeDtype(ds, "valid_max", CheckNameValidMaxDtype)
}

// attributeDtype scores one rule for each numeric variable that has
// attribute attr. It returns nil if no variable has it.
func attributeDtype(ds Dataset, attr, name string) *Result {
	var s scorer
	for _, v := range ds.Variables() {
		dt := ds.DType(v)
		if dt == Char || dt == Invalid {
			continue
		}
		a, ok := ds.VariableAttribute(v, attr)
		if !ok {
			continue
		}
		at := DTypeOf(a)
		s.assert(at == dt, "variable %s %s dtype %v does not match variable dtype %v", v, attr, at, dt)
	}
	if s.total == 0 {
		return nil
	}
	return s.result(name, Medium)
}
