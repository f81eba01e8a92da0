// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wavetermdev/waveanim/pkg/animate"
)

var (
	rootCmd = &cobra.Command{
		Use:          "waveanim",
		Short:        "Render animated components",
		Long:         `waveanim renders the built-in css keyframe animation wrappers (or any keyframe name) around html children and prints the resulting tree`,
		SilenceUsage: true,
	}
)

var WrappedStdout io.Writer = os.Stdout
var WrappedStderr io.Writer = os.Stderr

func WriteStderr(fmtStr string, args ...interface{}) {
	WrappedStderr.Write([]byte(fmt.Sprintf(fmtStr, args...)))
}

func WriteStdout(fmtStr string, args ...interface{}) {
	WrappedStdout.Write([]byte(fmt.Sprintf(fmtStr, args...)))
}

func OutputHelpMessage(cmd *cobra.Command) {
	cmd.SetOutput(WrappedStderr)
	cmd.Help()
	WriteStderr("\n")
}

var diagColors = map[animate.DiagnosticKind]*color.Color{
	animate.KindConfigurationError: color.New(color.FgRed, color.Bold),
	animate.KindInvalidEnumValue:   color.New(color.FgYellow),
}

func writeDiagnostics(diags []animate.Diagnostic) {
	for _, diag := range diags {
		c := diagColors[diag.Kind]
		if c == nil {
			c = color.New(color.Reset)
		}
		WriteStderr("%s %s\n", c.Sprintf("[%s]", diag.Kind), diag.Message)
	}
}

// Execute executes the root command and returns the process exit code
func Execute() (exitCode int) {
	defer func() {
		r := recover()
		if r != nil {
			WriteStderr("[panic] %v\n", r)
			debug.PrintStack()
			exitCode = 1
		}
	}()
	rootCmd.SetOut(WrappedStdout)
	rootCmd.SetErr(WrappedStderr)
	err := rootCmd.Execute()
	if err != nil {
		return 1
	}
	return 0
}
