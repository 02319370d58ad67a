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

package glidercheckutil

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/cdf"
	"github.com/lnashier/viper"
	"github.com/spatialmodel/glidercheck"
)

// testConfig returns a configuration holding the option defaults.
func testConfig() *viper.Viper {
	cfg := viper.New()
	for _, o := range options {
		cfg.SetDefault(o.name, o.defaultVal)
	}
	return cfg
}

// writeGlider writes a small glider file with valid coordinates.
func writeGlider(t *testing.T, dir string) string {
	t.Helper()
	h := cdf.NewHeader([]string{"time"}, []int{3})
	h.AddAttribute("", "platform_type", "Slocum Glider")
	h.AddVariable("time", []string{"time"}, []float64{0})
	h.AddAttribute("time", "standard_name", "time")
	h.AddAttribute("time", "long_name", "Time")
	h.AddAttribute("time", "units", "seconds since 1970-01-01T00:00:00Z")
	h.AddAttribute("time", "calendar", "gregorian")
	h.AddAttribute("time", "axis", "T")
	h.AddVariable("lat", []string{"time"}, []float64{0})
	h.AddAttribute("lat", "standard_name", "latitude")
	h.AddVariable("lon", []string{"time"}, []float64{0})
	h.AddAttribute("lon", "standard_name", "longitude")
	h.Define()

	path := filepath.Join(dir, "ru28.nc")
	ff, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	f, err := cdf.Create(ff, h)
	if err != nil {
		t.Fatal(err)
	}
	for v, vals := range map[string][]float64{
		"time": {1.5e9, 1.5e9 + 60, 1.5e9 + 120},
		"lat":  {38.5, 38.6, 38.7},
		"lon":  {-73.5, -73.6, -73.7},
	} {
		if _, err := f.Writer(v, nil, nil).Write(vals); err != nil && err != io.EOF {
			t.Fatal(err)
		}
	}
	if err := ff.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeTables writes NCEI authority tables into dir.
func writeTables(t *testing.T, dir string) {
	t.Helper()
	for name, text := range map[string]string{
		glidercheck.InstitutionsTable: "MARACOOS\n",
		glidercheck.ProjectsTable:     "MARACOOS\n",
		glidercheck.InstrumentsTable:  "Sea-Bird GCTD\n",
	} {
		if err := ioutil.WriteFile(filepath.Join(dir, name), []byte(text), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCheckText(t *testing.T) {
	dir := t.TempDir()
	path := writeGlider(t, dir)
	cfg := testConfig()
	cfg.Set("checks", "locations, time_series_variables")

	var buf bytes.Buffer
	if err := Check(context.Background(), cfg, &buf, path); err != nil {
		t.Fatal(err)
	}
	want := path + `
  locations                high   1/1
  time_series_variables    medium 7/7
  total                    8/8
`
	if buf.String() != want {
		t.Errorf("report:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestCheckTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeGlider(t, dir)
	writeTables(t, dir)
	cfg := testConfig()
	cfg.Set("format", "toml")
	cfg.Set("NCEITableURL", "file://"+dir+"/")

	var buf bytes.Buffer
	if err := Check(context.Background(), cfg, &buf, path); err != nil {
		t.Fatal(err)
	}
	var out struct {
		Report []struct {
			Source  string
			Passed  int
			Total   int
			Skipped []string
			Result  []struct {
				Name     string
				Level    string
				Passed   int
				Total    int
				Messages []string
			}
		}
	}
	if _, err := toml.Decode(buf.String(), &out); err != nil {
		t.Fatalf("%v\n%s", err, buf.String())
	}
	if len(out.Report) != 1 {
		t.Fatalf("got %d reports", len(out.Report))
	}
	rep := out.Report[0]
	if rep.Source != path {
		t.Errorf("source = %s", rep.Source)
	}
	wantSkipped := []string{
		glidercheck.CheckNameValidMinDtype,
		glidercheck.CheckNameValidMaxDtype,
		glidercheck.CheckNameQCVariables,
	}
	if !reflect.DeepEqual(rep.Skipped, wantSkipped) {
		t.Errorf("skipped = %v, want %v", rep.Skipped, wantSkipped)
	}
	if len(rep.Result) != 8 {
		t.Fatalf("got %d results", len(rep.Result))
	}
	var passed, total int
	for _, res := range rep.Result {
		passed += res.Passed
		total += res.Total
	}
	if passed != rep.Passed || total != rep.Total {
		t.Errorf("score (%d, %d) does not match results (%d, %d)", rep.Passed, rep.Total, passed, total)
	}
	ncei := rep.Result[len(rep.Result)-1]
	if ncei.Name != glidercheck.CheckNameNCEITables || ncei.Passed != 0 || ncei.Total != 2 {
		t.Errorf("ncei result = %+v", ncei)
	}
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeGlider(t, dir)
	cfg := testConfig()
	c, err := NewChecker(cfg)
	if err != nil {
		t.Fatal(err)
	}
	loc, err := c.Check(glidercheck.CheckNameLocations)
	if err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.nc")
	files := []string{path, missing, path}
	reps, err := CheckFiles(context.Background(), c, 2, files, loc)
	if err == nil {
		t.Fatal("expected an error for the missing file")
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error %q does not name the missing file", err)
	}
	if len(reps) != len(files) {
		t.Fatalf("got %d reports", len(reps))
	}
	for i, rep := range reps {
		if rep.Source != files[i] {
			t.Errorf("report %d is for %s, want %s", i, rep.Source, files[i])
		}
	}
	if _, ok := reps[1].Failed[openFailure]; !ok {
		t.Errorf("failed = %v", reps[1].Failed)
	}
	if p, tot := reps[2].Score(); p != 1 || tot != 1 {
		t.Errorf("score = (%d, %d)", p, tot)
	}
}

func TestCheckConfigErrors(t *testing.T) {
	tests := []struct {
		name, key string
		value     interface{}
	}{
		{name: "format", key: "format", value: "xml"},
		{name: "check", key: "checks", value: []string{"not_a_check"}},
		{name: "retries", key: "FetchRetries", value: -1},
		{name: "tables", key: "NCEITableURL", value: ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Set(test.key, test.value)
			var buf bytes.Buffer
			if err := Check(context.Background(), cfg, &buf, "ru28.nc"); err == nil {
				t.Error("expected an error")
			}
			if buf.Len() != 0 {
				t.Errorf("unexpected output %q", buf.String())
			}
		})
	}
}

func TestCheckNames(t *testing.T) {
	tests := []struct {
		value interface{}
		want  []string
	}{
		{value: []string{"locations", "qc_variables"}, want: []string{"locations", "qc_variables"}},
		{value: "locations,qc_variables", want: []string{"locations", "qc_variables"}},
		{value: []string{}, want: nil},
	}
	for _, test := range tests {
		cfg := testConfig()
		cfg.Set("checks", test.value)
		got, err := checkNames(cfg)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("checkNames(%#v) = %#v, want %#v", test.value, got, test.want)
		}
	}
}
