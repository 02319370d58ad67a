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
	"strings"
	"testing"

	"github.com/spatialmodel/glidercheck"
)

func TestVersion(t *testing.T) {
	var buf bytes.Buffer
	Root.SetOutput(&buf)
	defer Root.SetOutput(nil)
	Root.SetArgs([]string{"version"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if want := "glidercheck v" + glidercheck.Version + "\n"; buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestChecksCommand(t *testing.T) {
	var buf bytes.Buffer
	Root.SetOutput(&buf)
	defer Root.SetOutput(nil)
	Root.SetArgs([]string{"checks"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	c := glidercheck.NewChecker(glidercheck.DefaultConfig(), nil)
	if len(lines) != len(c.Checks()) {
		t.Fatalf("got %d checks, want %d:\n%s", len(lines), len(c.Checks()), buf.String())
	}
	for i, ch := range c.Checks() {
		if f := strings.Fields(lines[i]); len(f) != 2 || f[0] != ch.Name || f[1] != ch.Level.String() {
			t.Errorf("line %d = %q", i, lines[i])
		}
	}
}

func TestSetLogging(t *testing.T) {
	if err := setLogging("debug"); err != nil {
		t.Error(err)
	}
	if err := setLogging("loud"); err == nil {
		t.Error("expected an error for an invalid level")
	}
	if err := setLogging("warn"); err != nil {
		t.Error(err)
	}
}
