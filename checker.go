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
	"sync"

	"github.com/sirupsen/logrus"
)

// Config holds the locations of the controlled vocabularies used by the
// checks.
type Config struct {
	// NCEITableURL is the directory holding the NCEI authority tables
	// institutions.txt, projects.txt and instruments.txt.
	NCEITableURL string

	// SeaNamesURL is the location of the NODC sea names list.
	SeaNamesURL string

	// StandardNamesURL is the location of a line-delimited list of CF
	// standard names. If empty, variable standard names are not looked up.
	StandardNamesURL string

	// MaxStandardNameTableVersion is the newest CF standard name table
	// version that datasets may declare.
	MaxStandardNameTableVersion int
}

// DefaultConfig returns the configuration used by the IOOS Glider DAC.
func DefaultConfig() Config {
	return Config{
		NCEITableURL:                "https://gliders.ioos.us/ncei_authority_tables/",
		SeaNamesURL:                 BuiltinSeaNames,
		MaxStandardNameTableVersion: 86,
	}
}

// Names of the checks.
const (
	CheckNameLocations           = "locations"
	CheckNameCTDVariables        = "ctd_variables"
	CheckNameGlobalAttributes    = "global_attributes"
	CheckNameStandardNames       = "standard_names"
	CheckNameValidLon            = "valid_lon"
	CheckNameIOOSRA              = "ioos_ra"
	CheckNameValidMinDtype       = "valid_min_dtype"
	CheckNameValidMaxDtype       = "valid_max_dtype"
	CheckNameQCVariables         = "qc_variables"
	CheckNameTimeSeriesVariables = "time_series_variables"
	CheckNameNCEITables          = "ncei_tables"
)

// Check is one validator. Run returns a nil result if the check does not
// apply to the dataset. Errors are only returned when the check could not
// be evaluated, never for a non-compliant dataset.
type Check struct {
	Name  string
	Level Level
	Run   func(ctx context.Context, ds Dataset) (*Result, error)
}

// Checker holds the glider checks and the vocabularies they use.
type Checker struct {
	Config

	// Tables provides the vocabularies. If nil, the provider returned by
	// DefaultTables is used.
	Tables *TableProvider

	Log logrus.FieldLogger
}

var (
	defaultTablesOnce sync.Once
	defaultTables     *TableProvider
)

// DefaultTables returns the provider shared by checkers that are not given
// one. It retrieves vocabularies with an HTTPFetcher and is created on
// first use.
func DefaultTables() *TableProvider {
	defaultTablesOnce.Do(func() {
		defaultTables = NewTableProvider(&HTTPFetcher{Retries: 3, Log: logrus.StandardLogger()})
	})
	return defaultTables
}

// NewChecker returns a checker using cfg. If tables is nil, vocabularies
// come from DefaultTables.
func NewChecker(cfg Config, tables *TableProvider) *Checker {
	return &Checker{Config: cfg, Tables: tables, Log: logrus.StandardLogger()}
}

// noErr adapts a check that cannot fail to the Check.Run signature.
func noErr(f func(Dataset) *Result) func(context.Context, Dataset) (*Result, error) {
	return func(_ context.Context, ds Dataset) (*Result, error) { return f(ds), nil }
}

// Checks returns every check, in the order they are run.
func (c *Checker) Checks() []Check {
	return []Check{
		{Name: CheckNameLocations, Level: High, Run: noErr(c.CheckLocations)},
		{Name: CheckNameCTDVariables, Level: High, Run: noErr(c.CheckCTDVariables)},
		{Name: CheckNameGlobalAttributes, Level: High, Run: c.CheckGlobalAttributes},
		{Name: CheckNameStandardNames, Level: Medium, Run: c.CheckStandardNames},
		{Name: CheckNameValidLon, Level: Medium, Run: noErr(c.CheckValidLon)},
		{Name: CheckNameIOOSRA, Level: Low, Run: noErr(c.CheckIOOSRA)},
		{Name: CheckNameValidMinDtype, Level: Medium, Run: noErr(c.CheckValidMinDtype)},
		{Name: CheckNameValidMaxDtype, Level: Medium, Run: noErr(c.CheckValidMaxDtype)},
		{Name: CheckNameQCVariables, Level: Medium, Run: noErr(c.CheckQCVariables)},
		{Name: CheckNameTimeSeriesVariables, Level: Medium, Run: noErr(c.CheckTimeSeriesVariables)},
		{Name: CheckNameNCEITables, Level: Medium, Run: c.CheckNCEITables},
	}
}

// Check returns the check with the given name.
func (c *Checker) Check(name string) (Check, error) {
	for _, ch := range c.Checks() {
		if ch.Name == name {
			return ch, nil
		}
	}
	return Check{}, fmt.Errorf("glidercheck: unknown check %q", name)
}

// table retrieves a vocabulary and logs the retrieval.
func (c *Checker) table(ctx context.Context, loc string) (Table, error) {
	tables := c.Tables
	if tables == nil {
		tables = DefaultTables()
	}
	t, err := tables.Table(ctx, loc)
	if err != nil {
		return nil, err
	}
	c.Log.WithFields(logrus.Fields{"url": loc, "entries": len(t)}).Debug("glidercheck table loaded")
	return t, nil
}
