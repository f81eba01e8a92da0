// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/wavetermdev/waveanim/pkg/wavebase"
)

var versionVerbose bool

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version [-v]",
	Short: "Print the version number of waveanim",
	RunE:  runVersionCmd,
}

func init() {
	versionCmd.Flags().BoolVarP(&versionVerbose, "verbose", "v", false, "Display full version information")
	rootCmd.AddCommand(versionCmd)
}

func runVersionCmd(cmd *cobra.Command, args []string) error {
	if !versionVerbose {
		WriteStdout("waveanim v%s\n", wavebase.WaveAnimVersion)
		return nil
	}
	WriteStdout("v%s (%s)\n", wavebase.WaveAnimVersion, wavebase.BuildTime)
	WriteStdout("arch: %s\n", wavebase.ClientArch())
	WriteStdout("go:   %s\n", runtime.Version())
	return nil
}
