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
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/spatialmodel/glidercheck"
)

// Report formats.
const (
	formatText = "text"
	formatTOML = "toml"
)

// WriteReports writes reps to w in the given format.
func WriteReports(w io.Writer, format string, reps []*glidercheck.Report) error {
	switch format {
	case formatText:
		return writeText(w, reps)
	case formatTOML:
		return writeTOML(w, reps)
	}
	return fmt.Errorf("glidercheck: invalid report format %q", format)
}

func sortedKeys(m map[string]string) []string {
	o := make([]string, 0, len(m))
	for k := range m {
		o = append(o, k)
	}
	sort.Strings(o)
	return o
}

func writeText(w io.Writer, reps []*glidercheck.Report) error {
	ew := &errWriter{w: w}
	for i, rep := range reps {
		if i > 0 {
			ew.printf("\n")
		}
		ew.printf("%s\n", rep.Source)
		for _, res := range rep.Results {
			ew.printf("  %-24s %-6s %d/%d\n", res.Name, res.Level, res.Passed, res.Total)
			for _, msg := range res.Msgs {
				ew.printf("      - %s\n", msg)
			}
		}
		for _, name := range rep.Skipped {
			ew.printf("  %-24s skipped\n", name)
		}
		for _, name := range sortedKeys(rep.Failed) {
			ew.printf("  %-24s error: %s\n", name, rep.Failed[name])
		}
		passed, total := rep.Score()
		ew.printf("  %-24s %d/%d\n", "total", passed, total)
	}
	return ew.err
}

// errWriter remembers the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

type tomlResult struct {
	Name     string   `toml:"name"`
	Level    string   `toml:"level"`
	Passed   int      `toml:"passed"`
	Total    int      `toml:"total"`
	Messages []string `toml:"messages"`
}

type tomlReport struct {
	Source  string            `toml:"source"`
	Passed  int               `toml:"passed"`
	Total   int               `toml:"total"`
	Skipped []string          `toml:"skipped"`
	Failed  map[string]string `toml:"failed"`
	Results []tomlResult      `toml:"result"`
}

func writeTOML(w io.Writer, reps []*glidercheck.Report) error {
	out := struct {
		Reports []tomlReport `toml:"report"`
	}{}
	for _, rep := range reps {
		tr := tomlReport{
			Source:  rep.Source,
			Skipped: rep.Skipped,
			Failed:  rep.Failed,
		}
		tr.Passed, tr.Total = rep.Score()
		for _, res := range rep.Results {
			tr.Results = append(tr.Results, tomlResult{
				Name:     res.Name,
				Level:    res.Level.String(),
				Passed:   res.Passed,
				Total:    res.Total,
				Messages: res.Msgs,
			})
		}
		out.Reports = append(out.Reports, tr)
	}
	return toml.NewEncoder(w).Encode(out)
}
