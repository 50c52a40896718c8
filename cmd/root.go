/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/ibupdater/internal/iologger"
	"github.com/gnames/ibupdater/internal/iosettings"
	ibupdater "github.com/gnames/ibupdater/pkg"
	"github.com/gnames/ibupdater/pkg/config"
	"github.com/gnames/ibupdater/pkg/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	opts []config.Option
	cfg  *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			ibupdater.Version, ibupdater.Build),
		Use:   "ibupdater",
		Short: "ibupdater prepares settings for updating 1C information bases",
		Long: `ibupdater reads settings.xml with global update parameters and a list
of 1C information bases, checks them against the file system and derives
runtime facts, such as whether an information base is file or server based.

On the first run settings.xml does not exist. A template with a prompt in
every field is created instead, fill it and run ibupdater again.

Configuration precedence (highest to lowest):
  1. CLI flags (--workdir, --settings, --log-level, etc.)
  2. Environment variables (IBUPDATER_*)
  3. Built-in defaults

Environment Variables:
  IBUPDATER_WORK_DIR           directory with settings.xml and the log file
  IBUPDATER_SETTINGS_FILE      custom path to the settings file
  IBUPDATER_LOG_LEVEL          log level (debug/info/warn/error)
  IBUPDATER_LOG_FORMAT         log format (json/text/tint)
  IBUPDATER_LOG_DESTINATION    log destination (file/stderr/stdout)`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "ibupdater version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for ibupdater")

	pf := rootCmd.PersistentFlags()
	pf.StringP("workdir", "w", "",
		"directory with settings.xml and the log file (default: current directory)")
	pf.StringP("settings", "s", "",
		"settings file (default: <workdir>/settings.xml)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: json, text, tint")
	pf.String("log-destination", "", "log destination: file, stderr, stdout")

	rootCmd.AddCommand(getCheckCmd())
	rootCmd.AddCommand(getShowCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later when settings are loaded
	if err = iologger.Init("", config.New().Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if cfg, err = initConfig(cmd); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Debug("Configuration loaded",
		"work_dir", cfg.WorkDir,
		"settings_file", cfg.SettingsPath(),
	)
	return nil
}

func initConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	initEnvVars(v)
	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot get working directory: %w", err)
	}

	opts = []config.Option{config.OptWorkDir(wd)}
	addOpt := func(key string, fn func(string) config.Option) {
		if s := v.GetString(key); s != "" {
			opts = append(opts, fn(s))
		}
	}
	addOpt("work_dir", config.OptWorkDir)
	addOpt("settings_file", config.OptSettingsFile)
	addOpt("log.level", config.OptLogLevel)
	addOpt("log.format", config.OptLogFormat)
	addOpt("log.destination", config.OptLogDestination)

	res := config.New()
	res.Update(opts)
	return res, nil
}

func initEnvVars(v *viper.Viper) {
	// Env variables are bound one by one, so it is clear which of them
	// are supported.
	v.BindEnv("work_dir", "IBUPDATER_WORK_DIR")
	v.BindEnv("settings_file", "IBUPDATER_SETTINGS_FILE")
	v.BindEnv("log.level", "IBUPDATER_LOG_LEVEL")
	v.BindEnv("log.format", "IBUPDATER_LOG_FORMAT")
	v.BindEnv("log.destination", "IBUPDATER_LOG_DESTINATION")
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	flags := map[string]string{
		"work_dir":        "workdir",
		"settings_file":   "settings",
		"log.level":       "log-level",
		"log.format":      "log-format",
		"log.destination": "log-destination",
	}
	for key, name := range flags {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Records are appended, because the settings loader already removed the old
// log file if OverwriteLogFile is set.
func reconfigureLogging(cfg *config.Config) error {
	return iologger.Init(cfg.LogPath(), cfg.Log, true)
}

// loadSettings runs the whole pipeline: load, reconfigure logging,
// validate. Errors are reported to the user here.
func loadSettings() (*settings.Settings, error) {
	m := iosettings.New(cfg)

	stg, err := m.Load()
	if err != nil {
		if !iosettings.IsSettingsFileCreated(err) {
			slog.Error("Cannot load settings", "error", err)
		}
		gn.PrintErrorMessage(err)
		return nil, err
	}

	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return nil, err
	}

	res, err := m.Validate(stg)
	if err != nil {
		slog.Error("Settings are invalid", "error", err)
		gn.PrintErrorMessage(err)
		return nil, err
	}

	slog.Info("Settings are valid", "bases", len(res.Bases))
	return res, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
