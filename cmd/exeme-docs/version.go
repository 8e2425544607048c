// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/exeme-project/exeme-lang/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCommand(_ *runtimeState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
