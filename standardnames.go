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
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// standardNameTableRE matches both the long and the short form of a
// CF standard name table version.
var standardNameTableRE = regexp.MustCompile(`^(?:CF Standard Name Table v|CF-v)([0-9]+)$`)

// CheckStandardNames checks that the standard_name_vocabulary global
// attribute names a published version of the CF standard name table.
// If a standard names table is configured, every variable's standard_name
// must also be in it. All problems are scored as a single rule.
func (c *Checker) CheckStandardNames(ctx context.Context, ds Dataset) (*Result, error) {
	var names Table
	if c.StandardNamesURL != "" {
		var err error
		if names, err = c.table(ctx, c.StandardNamesURL); err != nil {
			return nil, err
		}
	}
	var s scorer
	var problems []string
	vocab := strings.TrimSpace(globalString(ds, "standard_name_vocabulary"))
	m := standardNameTableRE.FindStringSubmatch(vocab)
	if m == nil {
		problems = append(problems, fmt.Sprintf("standard_name_vocabulary %q is not a CF standard name table version", vocab))
	} else if n, _ := strconv.Atoi(m[1]); n < 1 || n > c.MaxStandardNameTableVersion {
		problems = append(problems, fmt.Sprintf("standard_name_vocabulary %q is not a known CF standard name table version", vocab))
	}
	if names != nil {
		for _, v := range ds.Variables() {
			sn, ok := attrString(ds, v, "standard_name")
			if !ok {
				continue
			}
			// A standard name may be followed by a modifier.
			f := strings.Fields(sn)
			if len(f) == 0 || !names.Contains(f[0]) {
				problems = append(problems, fmt.Sprintf("variable %s standard_name %q is not in %s", v, sn, c.StandardNamesURL))
			}
		}
	}
	s.check(problems)
	return s.result(CheckNameStandardNames, Medium), nil
}

// RegionalAssociations are the IOOS regional associations.
var RegionalAssociations = []string{
	"AOOS", "CARICOOS", "CeNCOOS", "GCOOS", "GLOS", "MARACOOS",
	"NANOOS", "NERACOOS", "PacIOOS", "SCCOOS", "SECOORA",
}

// CheckIOOSRA checks that the ioos_regional_association global attribute
// names an IOOS regional association.
func (c *Checker) CheckIOOSRA(ds Dataset) *Result {
	var s scorer
	ra := strings.TrimSpace(globalString(ds, "ioos_regional_association"))
	found := false
	for _, r := range RegionalAssociations {
		if ra == r {
			found = true
			break
		}
	}
	switch {
	case ra == "":
		s.fail("ioos_regional_association global attribute should be defined")
	default:
		s.assert(found, "ioos_regional_association %s is not one of %s", ra, strings.Join(RegionalAssociations, ", "))
	}
	return s.result(CheckNameIOOSRA, Low)
}
