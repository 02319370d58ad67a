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

import "fmt"

// Level is the importance of a check.
type Level int

// Check importance levels.
const (
	Low Level = iota + 1
	Medium
	High
)

func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Result is the score of one check against one dataset. A nil *Result means
// the check did not apply to the dataset.
type Result struct {
	// Name is the name of the check that produced the result.
	Name string

	// Level is the importance of the check.
	Level Level

	// Passed is the number of rules that passed and Total is the number
	// of rules evaluated. 0 <= Passed <= Total.
	Passed, Total int

	// Msgs holds one diagnostic for each failure, in the order the
	// failures were found. Identical messages are not merged.
	Msgs []string
}

// Value returns the passed and total counts.
func (r *Result) Value() (passed, total int) { return r.Passed, r.Total }

// OK returns whether every rule passed.
func (r *Result) OK() bool { return r.Passed == r.Total }

func (r *Result) String() string {
	return fmt.Sprintf("%s: %d/%d", r.Name, r.Passed, r.Total)
}

// scorer accumulates the rules evaluated by a check.
type scorer struct {
	passed, total int
	msgs          []string
}

// assert scores one rule, recording msg if it failed.
func (s *scorer) assert(ok bool, format string, args ...interface{}) {
	s.total++
	if ok {
		s.passed++
		return
	}
	s.msgs = append(s.msgs, fmt.Sprintf(format, args...))
}

// score scores one rule without a message.
func (s *scorer) score(ok bool) {
	s.total++
	if ok {
		s.passed++
	}
}

// check scores one rule that passes if there are no problems. Every
// problem is recorded.
func (s *scorer) check(problems []string) {
	s.score(len(problems) == 0)
	s.msgs = append(s.msgs, problems...)
}

// fail scores one failed rule.
func (s *scorer) fail(format string, args ...interface{}) {
	s.assert(false, format, args...)
}

// result freezes the accumulated score.
func (s *scorer) result(name string, level Level) *Result {
	msgs := make([]string, len(s.msgs))
	copy(msgs, s.msgs)
	return &Result{
		Name:   name,
		Level:  level,
		Passed: s.passed,
		Total:  s.total,
		Msgs:   msgs,
	}
}
