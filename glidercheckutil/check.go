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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/glidercheck"
	"golang.org/x/sync/errgroup"
)

// Check checks the given files using the configuration in cfg and writes
// the reports to w in the configured format.
func Check(ctx context.Context, cfg *viper.Viper, w io.Writer, files ...string) error {
	format, err := checkFormat(cfg.GetString("format"))
	if err != nil {
		return err
	}
	c, err := NewChecker(cfg)
	if err != nil {
		return err
	}
	checks, err := selectChecks(c, cfg)
	if err != nil {
		return err
	}
	reps, checkErr := CheckFiles(ctx, c, cfg.GetInt("workers"), files, checks...)
	if err := WriteReports(w, format, reps); err != nil {
		return err
	}
	return checkErr
}

// CheckFiles runs checks against each file, checking up to workers files
// at the same time. If checks is empty, every check is run. One report
// is returned for each file, in the order of files, even if the file
// could not be read. The error collects every file that could not be read
// and every check that could not be evaluated.
func CheckFiles(ctx context.Context, c *glidercheck.Checker, workers int, files []string, checks ...glidercheck.Check) ([]*glidercheck.Report, error) {
	reps := make([]*glidercheck.Report, len(files))
	var (
		mu   sync.Mutex
		errs *multierror.Error
	)
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			rep, err := checkFile(ctx, c, f, checks)
			reps[i] = rep
			if err != nil {
				mu.Lock()
				errs = multierror.Append(errs, fmt.Errorf("%s: %v", f, err))
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait()
	return reps, errs.ErrorOrNil()
}

// openFailure is the Failed key of a report for a file that could not
// be read.
const openFailure = "open"

func checkFile(ctx context.Context, c *glidercheck.Checker, f string, checks []glidercheck.Check) (*glidercheck.Report, error) {
	failed := func(err error) (*glidercheck.Report, error) {
		c.Log.WithFields(logrus.Fields{"source": f}).WithError(err).Error("glidercheck could not read file")
		return &glidercheck.Report{Source: f, Failed: map[string]string{openFailure: err.Error()}}, err
	}
	local, cleanup, err := maybeDownload(ctx, f)
	if err != nil {
		return failed(err)
	}
	defer cleanup()
	ds, ff, err := glidercheck.OpenFile(local)
	if err != nil {
		return failed(err)
	}
	defer ff.Close()
	return c.Run(ctx, f, ds, checks...)
}
