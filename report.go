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
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// Report holds the outcome of running a set of checks on one dataset.
type Report struct {
	// Source identifies the dataset, e.g. its file name.
	Source string

	// Results holds the results of the checks that applied.
	Results []*Result

	// Skipped holds the names of checks that did not apply.
	Skipped []string

	// Failed maps the names of checks that could not be evaluated to
	// the reason.
	Failed map[string]string
}

// Score returns the passed and total counts summed over all results.
func (r *Report) Score() (passed, total int) {
	for _, res := range r.Results {
		passed += res.Passed
		total += res.Total
	}
	return passed, total
}

// Run runs checks against ds in order. If checks is empty, every check is
// run. A report is always returned; the error collects the checks that
// could not be evaluated.
func (c *Checker) Run(ctx context.Context, source string, ds Dataset, checks ...Check) (*Report, error) {
	if len(checks) == 0 {
		checks = c.Checks()
	}
	rep := &Report{Source: source, Failed: make(map[string]string)}
	var errs *multierror.Error
	for _, ch := range checks {
		start := time.Now()
		res, err := ch.Run(ctx, ds)
		log := c.Log.WithFields(logrus.Fields{
			"source":  source,
			"check":   ch.Name,
			"elapsed": time.Since(start),
		})
		switch {
		case err != nil:
			log.WithError(err).Error("glidercheck check failed")
			rep.Failed[ch.Name] = err.Error()
			errs = multierror.Append(errs, fmt.Errorf("%s: %v", ch.Name, err))
		case res == nil:
			log.Debug("glidercheck check not applicable")
			rep.Skipped = append(rep.Skipped, ch.Name)
		default:
			log.WithFields(logrus.Fields{"passed": res.Passed, "total": res.Total}).Info("glidercheck check finished")
			rep.Results = append(rep.Results, res)
		}
	}
	return rep, errs.ErrorOrNil()
}
