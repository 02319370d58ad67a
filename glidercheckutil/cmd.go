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
	"os"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/glidercheck"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	defaults := glidercheck.DefaultConfig()

	// Options are the configuration options available to glidercheck.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "log_level",
			usage: `
              log_level sets the logging verbosity: one of panic, fatal,
              error, warn, info or debug.`,
			defaultVal: "warn",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "NCEITableURL",
			usage: `
              NCEITableURL is the directory holding the NCEI authority tables
              institutions.txt, projects.txt and instruments.txt. It may be
              an http(s) URL or a blob location (file://, gs:// or s3://).`,
			defaultVal: defaults.NCEITableURL,
			flagsets:   []*pflag.FlagSet{checkCmd.Flags()},
		},
		{
			name: "SeaNamesURL",
			usage: `
              SeaNamesURL is the location of the NODC sea names list. The
              default uses the list built into the program.`,
			defaultVal: defaults.SeaNamesURL,
			flagsets:   []*pflag.FlagSet{checkCmd.Flags()},
		},
		{
			name: "StandardNamesURL",
			usage: `
              StandardNamesURL is the location of a line-delimited list of
              CF standard names. If set, the standard_name of every variable
              must be in the list.`,
			defaultVal: defaults.StandardNamesURL,
			flagsets:   []*pflag.FlagSet{checkCmd.Flags()},
		},
		{
			name: "MaxStandardNameTableVersion",
			usage: `
              MaxStandardNameTableVersion is the newest CF standard name table
              version that datasets may declare in standard_name_vocabulary.`,
			defaultVal: defaults.MaxStandardNameTableVersion,
			flagsets:   []*pflag.FlagSet{checkCmd.Flags()},
		},
		{
			name: "FetchRetries",
			usage: `
              FetchRetries is the number of times a failed table download
              is retried.`,
			defaultVal: 3,
			flagsets:   []*pflag.FlagSet{checkCmd.Flags()},
		},
		{
			name: "checks",
			usage: `
              checks lists the checks to run. If empty, all checks are run.
              Use the 'checks' command to list the available checks.`,
			shorthand:  "c",
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{checkCmd.Flags()},
		},
		{
			name: "format",
			usage: `
              format is the report format: text or toml.`,
			shorthand:  "f",
			defaultVal: "text",
			flagsets:   []*pflag.FlagSet{checkCmd.Flags()},
		},
		{
			name: "workers",
			usage: `
              workers is the maximum number of files checked at the same
              time.`,
			shorthand:  "w",
			defaultVal: 4,
			flagsets:   []*pflag.FlagSet{checkCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GLIDERCHECK")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(checkCmd)
	Root.AddCommand(checksCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and configures logging.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("glidercheck: problem reading configuration file: %v", err)
		}
	}
	return setLogging(Cfg.GetString("log_level"))
}

// setLogging configures the standard logger, which the checker and the
// table provider log to.
func setLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("glidercheck: invalid log_level: %v", err)
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stderr)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "glidercheck",
	Short: "A compliance checker for glider NetCDF files.",
	Long: `glidercheck checks oceanographic glider NetCDF files against the IOOS
Glider DAC and NCEI archiving conventions and reports a score for each check.
Use the subcommands specified below to access the checker functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'GLIDERCHECK_var' where 'var' is the
name of the variable to be set. Locations are additionally allowed to contain
environment variables within them.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of glidercheck.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "glidercheck v%s\n", glidercheck.Version)
	},
	DisableAutoGenTag: true,
}

// checkCmd checks glider files.
var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Check glider NetCDF files.",
	Long: `check runs the compliance checks against each of the given NetCDF
classic or NetCDF-4 files and writes a report to standard output. Only the
root group of a NetCDF-4 file is checked. Files may be local paths,
http(s) URLs or blob locations (file://, gs:// or s3://).

check fails if a file cannot be read or a check cannot be evaluated, for
example because a vocabulary table could not be downloaded. Files that
are readable but do not comply are reported but are not failures.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Check(context.Background(), Cfg, cmd.OutOrStdout(), args...)
	},
	DisableAutoGenTag: true,
}

// checksCmd lists the available checks.
var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List the available checks.",
	Long:  "checks lists the names and importance levels of the available checks, in the order they run.",
	Run: func(cmd *cobra.Command, args []string) {
		c := glidercheck.NewChecker(glidercheck.DefaultConfig(), nil)
		for _, ch := range c.Checks() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", ch.Name, ch.Level)
		}
	},
	DisableAutoGenTag: true,
}
