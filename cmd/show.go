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

	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func getShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print validated settings with derived fields",
		Long: `Load and validate settings.xml, then print it together with derived
fields: mode, file path and ID of every information base.

Passwords are masked.

Examples:
  ibupdater show
  ibupdater show --format json`,
		RunE: runShow,
	}

	cmd.Flags().StringP("format", "f", "yaml",
		"output format: yaml or json")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	var out []byte

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	switch format {
	case "yaml", "json":
	default:
		return fmt.Errorf("unknown output format %q, use yaml or json", format)
	}

	stg, err := loadSettings()
	if err != nil {
		return err
	}
	stg = stg.Masked()

	if format == "json" {
		enc := gnfmt.GNjson{Pretty: true}
		out, err = enc.Encode(stg)
	} else {
		out, err = yaml.Marshal(stg)
	}
	if err != nil {
		return fmt.Errorf("cannot encode settings: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
