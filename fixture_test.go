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
	"sync/atomic"
	"testing"
)

const testTableURL = "https://gliders.ioos.us/ncei_authority_tables/"

var testTables = map[string]string{
	testTableURL + InstitutionsTable: "MARACOOS\nUniversity of Delaware\nWoods Hole Oceanographic Institution",
	testTableURL + ProjectsTable:     "MARACOOS",
	testTableURL + InstrumentsTable:  "Seabird GCTD\nSea-Bird 41CP\nSea-Bird GCTD\nSeabird GPCTD",
}

// mapFetcher serves tables from memory and counts the fetches.
type mapFetcher struct {
	tables map[string]string
	calls  int32
}

func (m *mapFetcher) Fetch(ctx context.Context, loc string) (string, error) {
	atomic.AddInt32(&m.calls, 1)
	t, ok := m.tables[loc]
	if !ok {
		return "", fmt.Errorf("404 Not Found")
	}
	return t, nil
}

func newTestChecker(t *testing.T) (*Checker, *mapFetcher) {
	f := &mapFetcher{tables: testTables}
	cfg := DefaultConfig()
	cfg.NCEITableURL = testTableURL
	return NewChecker(cfg, NewTableProvider(f)), f
}

// gliderDataset returns a small dataset that passes every check.
func gliderDataset() *MemDataset {
	const n = 10
	d := NewMockTimeSeries(n)
	globals := map[string]string{
		"Conventions":              "CF-1.6",
		"comment":                  "Test deployment",
		"contributor_name":         "Jane Doe",
		"contributor_role":         "Principal Investigator",
		"creator_email":            "gliders@example.org",
		"creator_name":             "Jane Doe",
		"creator_url":              "http://example.org",
		"date_created":             "2017-03-01T00:00:00Z",
		"date_issued":              "2017-03-01T00:00:00Z",
		"date_modified":            "2017-03-01T00:00:00Z",
		"format_version":           "IOOS_Glider_NetCDF_v2.0.nc",
		"history":                  "created",
		"id":                       "ru28-20170301T0000",
		"institution":              "MARACOOS",
		"keywords":                 "AUVS, Autonomous Underwater Vehicles",
		"keywords_vocabulary":      "GCMD Science Keywords",
		"license":                  "Freely available",
		"metadata_link":            "http://example.org/metadata",
		"naming_authority":         "edu.rutgers",
		"platform_type":            "Slocum Glider",
		"processing_level":         "L2",
		"project":                  "MARACOOS",
		"publisher_email":          "gliders@example.org",
		"publisher_name":           "Jane Doe",
		"publisher_url":            "http://example.org",
		"references":               "none",
		"sea_name":                 "Mid-Atlantic Bight",
		"source":                   "Observational data from a profiling glider",
		"standard_name_vocabulary": "CF Standard Name Table v27",
		"summary":                  "A test glider deployment",
		"title":                    "ru28 test deployment",
		"wmo_id":                   "4801938",
	}
	for _, k := range requiredGlobalAttributes {
		d.SetGlobal(k, globals[k])
	}
	d.SetGlobal("ioos_regional_association", "MARACOOS")

	for _, v := range []string{"lat", "lon"} {
		d.SetAttribute(v, "long_name", v)
	}
	d.SetAttribute("lat", "valid_min", -90.0)
	d.SetAttribute("lat", "valid_max", 90.0)
	d.SetAttribute("lon", "valid_min", -180.0)
	d.SetAttribute("lon", "valid_max", 180.0)

	d.AddVariable("platform", nil, int32(0))
	d.SetAttribute("platform", "type", "platform")
	d.AddVariable("instrument_ctd", nil, int32(0))
	d.SetAttribute("instrument_ctd", "make_model", "Sea-Bird GCTD")

	for _, v := range ctdVariables {
		vals := make([]float32, n)
		for i := range vals {
			vals[i] = 10 + float32(i)
		}
		d.AddVariable(v, []string{"time"}, vals)
		d.SetAttribute(v, "units", "1")
		d.SetAttribute(v, "long_name", v)
		d.SetAttribute(v, "standard_name", "sea_water_"+v)
		d.SetAttribute(v, "observation_type", "measured")
		d.SetAttribute(v, "platform", "platform")
		d.SetAttribute(v, "instrument", "instrument_ctd")
		d.SetAttribute(v, "ancillary_variables", v+"_qc")
		d.SetAttribute(v, "valid_min", float32(0))
		d.SetAttribute(v, "valid_max", float32(100))
		d.SetAttribute(v, "_FillValue", float32(-999))
		d.SetAttribute(v, "accuracy", float32(0.01))
		d.SetAttribute(v, "precision", float32(0.01))
		d.SetAttribute(v, "resolution", float32(0.001))
		addQC(d, v+"_qc")
	}
	return d
}

func addQC(d *MemDataset, name string) {
	d.AddVariable(name, []string{"time"}, make([]int8, 10))
	d.SetAttribute(name, "flag_values", []int8{0, 1, 2, 3, 4, 9})
	d.SetAttribute(name, "flag_meanings", "no_qc_performed good_data probably_good_data bad_data_that_are_potentially_correctable bad_data missing_data")
	d.SetAttribute(name, "long_name", name+" Quality Flag")
	d.SetAttribute(name, "standard_name", "status_flag")
}

func checkValue(t *testing.T, r *Result, passed, total int) {
	t.Helper()
	if r == nil {
		t.Fatalf("result is nil, want (%d, %d)", passed, total)
	}
	if p, tot := r.Value(); p != passed || tot != total {
		t.Errorf("result = (%d, %d), want (%d, %d); messages: %q", p, tot, passed, total, r.Msgs)
	}
	if r.Passed < 0 || r.Passed > r.Total {
		t.Errorf("invalid score (%d, %d)", r.Passed, r.Total)
	}
}
