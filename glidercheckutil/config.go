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
	"os"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/glidercheck"
	"github.com/spf13/cast"
)

// NewChecker creates a checker from the configuration in cfg.
func NewChecker(cfg *viper.Viper) (*glidercheck.Checker, error) {
	c := glidercheck.DefaultConfig()
	c.NCEITableURL = os.ExpandEnv(cfg.GetString("NCEITableURL"))
	c.SeaNamesURL = os.ExpandEnv(cfg.GetString("SeaNamesURL"))
	c.StandardNamesURL = os.ExpandEnv(cfg.GetString("StandardNamesURL"))
	if c.NCEITableURL == "" {
		return nil, fmt.Errorf("glidercheck: NCEITableURL must be set")
	}
	if c.SeaNamesURL == "" {
		return nil, fmt.Errorf("glidercheck: SeaNamesURL must be set")
	}

	var err error
	if c.MaxStandardNameTableVersion, err = cast.ToIntE(cfg.Get("MaxStandardNameTableVersion")); err != nil {
		return nil, fmt.Errorf("glidercheck: invalid MaxStandardNameTableVersion: %v", err)
	}
	retries, err := cast.ToIntE(cfg.Get("FetchRetries"))
	if err != nil || retries < 0 {
		return nil, fmt.Errorf("glidercheck: invalid FetchRetries %v", cfg.Get("FetchRetries"))
	}

	log := logrus.StandardLogger()
	tables := glidercheck.NewTableProvider(&glidercheck.HTTPFetcher{Retries: uint64(retries), Log: log})
	tables.Log = log
	return glidercheck.NewChecker(c, tables), nil
}

// checkNames returns the names of the checks to run from the "checks"
// option. Names may be given as a list or as a comma or space separated
// string, e.g. from an environment variable.
func checkNames(cfg *viper.Viper) ([]string, error) {
	v := cfg.Get("checks")
	if v == nil {
		return nil, nil
	}
	raw, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("glidercheck: invalid checks: %v", err)
	}
	var o []string
	for _, r := range raw {
		o = append(o, strings.FieldsFunc(r, func(c rune) bool { return c == ',' || c == ' ' })...)
	}
	return o, nil
}

// selectChecks returns the configured checks, in the order they are
// given. A nil result means all checks.
func selectChecks(c *glidercheck.Checker, cfg *viper.Viper) ([]glidercheck.Check, error) {
	names, err := checkNames(cfg)
	if err != nil {
		return nil, err
	}
	var o []glidercheck.Check
	for _, name := range names {
		ch, err := c.Check(name)
		if err != nil {
			return nil, err
		}
		o = append(o, ch)
	}
	return o, nil
}

// checkFormat makes sure that a supported report format was requested.
func checkFormat(f string) (string, error) {
	f = strings.ToLower(strings.TrimSpace(f))
	switch f {
	case formatText, formatTOML:
		return f, nil
	}
	return f, fmt.Errorf("glidercheck: the format option needs to be set to either %s or %s, but is currently set to `%s`",
		formatText, formatTOML, f)
}
