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
	"context"
	"strings"
)

// The NCEI authority tables.
const (
	InstitutionsTable = "institutions.txt"
	ProjectsTable     = "projects.txt"
	InstrumentsTable  = "instruments.txt"
)

// instrumentVariable is the conventional name of the variable describing
// the primary instrument.
const instrumentVariable = "instrument"

// CheckNCEITables checks the institution and project global attributes and
// the make_model of every referenced instrument variable against the NCEI
// authority tables.
//
// Institution and project score one rule each. Every name listed in a
// variable's instrument attribute scores one rule: it fails if the named
// variable does not exist, and otherwise passes if that variable's
// make_model is in the instruments table. The variable named "instrument",
// if there is one, is scored once more on its own.
func (c *Checker) CheckNCEITables(ctx context.Context, ds Dataset) (*Result, error) {
	urls := make(map[string]string)
	tables := make(map[string]Table)
	for _, name := range []string{InstitutionsTable, ProjectsTable, InstrumentsTable} {
		u, err := JoinURL(c.NCEITableURL, name)
		if err != nil {
			return nil, err
		}
		t, err := c.table(ctx, u)
		if err != nil {
			return nil, err
		}
		urls[name], tables[name] = u, t
	}

	var s scorer
	for _, g := range []struct{ attr, table string }{
		{"institution", InstitutionsTable},
		{"project", ProjectsTable},
	} {
		val := strings.TrimSpace(globalString(ds, g.attr))
		s.assert(tables[g.table].Contains(val),
			"Global attribute %s value '%s' not contained in %s", g.attr, val, urls[g.table])
	}

	instruments := tables[InstrumentsTable]
	makeModel := func(v string) {
		mm, _ := attrString(ds, v, "make_model")
		mm = strings.TrimSpace(mm)
		s.assert(instruments.Contains(mm),
			"Instrument make/model '%s' for variable %s not contained in %s", mm, v, urls[InstrumentsTable])
	}
	for _, v := range ds.Variables() {
		ref, ok := attrString(ds, v, "instrument")
		if !ok {
			continue
		}
		for _, name := range splitNames(ref) {
			if !ds.HasVariable(name) {
				s.fail("Referenced instrument variable %s does not exist", name)
				continue
			}
			makeModel(name)
		}
	}
	if ds.HasVariable(instrumentVariable) {
		makeModel(instrumentVariable)
	}
	return s.result(CheckNameNCEITables, Medium), nil
}
