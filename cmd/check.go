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
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

func getCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load and validate settings.xml",
		Long: `Load settings.xml from the working directory and validate it.

This command:
  1. Creates a settings template if settings.xml does not exist
  2. Checks that directories of file information bases exist
  3. Checks that the templates directory exists
  4. Creates the backups directory if it is missing

Validation stops at the first problem found.

Examples:
  ibupdater check
  ibupdater check --workdir D:\Updater`,
		RunE: runCheck,
	}
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	stg, err := loadSettings()
	if err != nil {
		return err
	}

	gn.Info("Settings file <em>%s</em> is valid", cfg.SettingsPath())
	gn.Info("Information bases: <em>%s</em>",
		humanize.Comma(int64(len(stg.Bases))))
	for i, v := range stg.Bases {
		loc := v.FilePath
		if v.IsServer() {
			loc = v.ConnectionString
		}
		gn.Info("%s. %s (%s): <em>%s</em>",
			humanize.Comma(int64(i+1)), v.Description, v.Mode, loc)
	}
	if stg.BackupsDirectory != "" {
		gn.Info("Backups directory: <em>%s</em>", stg.BackupsDirectory)
	}
	gn.Info("Log file: <em>%s</em>", stg.LogFilePath)
	return nil
}
