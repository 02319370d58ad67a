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

// requiredGlobalAttributes are the global attributes every glider dataset
// must define.
var requiredGlobalAttributes = []string{
	"Conventions",
	"comment",
	"contributor_name",
	"contributor_role",
	"creator_email",
	"creator_name",
	"creator_url",
	"date_created",
	"date_issued",
	"date_modified",
	"format_version",
	"history",
	"id",
	"institution",
	"keywords",
	"keywords_vocabulary",
	"license",
	"metadata_link",
	"naming_authority",
	"platform_type",
	"processing_level",
	"project",
	"publisher_email",
	"publisher_name",
	"publisher_url",
	"references",
	"sea_name",
	"source",
	"standard_name_vocabulary",
	"summary",
	"title",
	"wmo_id",
}

// AcceptablePlatformTypes are the platform_type values NCEI accepts for
// archiving.
var AcceptablePlatformTypes = []string{"Seaglider", "Spray Glider", "Slocum Glider"}

// CheckGlobalAttributes checks that each required global attribute is
// present and has content. sea_name must be a comma-separated list of names
// from the NODC sea names list, compared without regard to case,
// and platform_type must be one of AcceptablePlatformTypes. Each attribute
// scores two rules: presence and content.
func (c *Checker) CheckGlobalAttributes(ctx context.Context, ds Dataset) (*Result, error) {
	seaNames, err := c.table(ctx, c.SeaNamesURL)
	if err != nil {
		return nil, err
	}
	var s scorer
	for _, name := range requiredGlobalAttributes {
		a, ok := ds.GlobalAttribute(name)
		s.assert(ok, "%s global attribute is missing", name)
		str, isString := a.(string)
		switch {
		case !ok:
			s.score(false)
		case name == "sea_name":
			shown := str
			if strings.TrimSpace(str) == "" {
				// Blank values are shown as a single space.
				shown = " "
			}
			s.assert(isString && validSeaName(seaNames, str),
				"sea_name attribute should be from the NODC sea names list: %s is not a valid sea name", shown)
		case name == "platform_type":
			s.assert(isString && validPlatformType(str),
				"platform_type %s is not one of the NCEI accepted platforms for archiving: %s",
				str, strings.Join(AcceptablePlatformTypes, ","))
		case isString:
			s.assert(strings.TrimSpace(str) != "", "%s global attribute can not be empty", name)
		default:
			s.score(true)
		}
	}
	return s.result(CheckNameGlobalAttributes, High), nil
}

// validSeaName returns whether every comma-separated name in v is in the
// sea names table, ignoring case.
func validSeaName(names Table, v string) bool {
	if strings.TrimSpace(v) == "" {
		return false
	}
	for _, n := range strings.Split(v, ",") {
		if !names.ContainsFold(strings.TrimSpace(n)) {
			return false
		}
	}
	return true
}

func validPlatformType(p string) bool {
	p = strings.TrimSpace(p)
	for _, a := range AcceptablePlatformTypes {
		if p == a {
			return true
		}
	}
	return false
}
