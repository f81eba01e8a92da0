// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wavetermdev/waveanim/pkg/animate"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the json schema for animation props (props files)",
	Args:  cobra.NoArgs,
	RunE:  schemaRun,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func schemaRun(cmd *cobra.Command, args []string) error {
	schemaStr, err := animate.PropsSchemaJson()
	if err != nil {
		return fmt.Errorf("generating schema: %w", err)
	}
	WriteStdout("%s\n", schemaStr)
	return nil
}
