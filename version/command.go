/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package version

import (
	"fmt"
	"os"

	"github.com/moby/term"
	"github.com/spf13/cobra"
)

// Version returns a cobra command to be added to another cobra command,
// like:
//
//	rootCmd.AddCommand(version.Version())
func Version() *cobra.Command {
	return version("")
}

// WithFont returns a version command with the given font for the ASCII
// name banner:
//
//	rootCmd.AddCommand(version.WithFont("starwars"))
func WithFont(fontName string) *cobra.Command {
	return version(fontName)
}

func version(fontName string) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:           "version",
		Short:         "Prints the version",
		Long:          "version prints the version of this binary and exits",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := GetVersionInfo()
			v.Name = cmd.Root().Name()
			v.Description = cmd.Root().Short

			// The banner is for humans, skip it when the output is
			// piped somewhere.
			if fontName != "" && term.IsTerminal(os.Stdout.Fd()) && v.CheckFontName(fontName) {
				v.ASCIIName = "true"
				v.FontName = fontName
			}

			if outputJSON {
				out, err := v.JSONString()
				if err != nil {
					return fmt.Errorf("generating JSON from version info: %w", err)
				}
				cmd.Println(out)
			} else {
				cmd.Println(v.String())
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "print JSON instead of text")

	return cmd
}
