// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"github.com/wavetermdev/waveanim/pkg/animations"
	"github.com/wavetermdev/waveanim/pkg/util/utilfn"
)

var (
	listCategory string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the built-in animations",
	Long: `List the built-in animations and the component names they register.

Examples:
  # all animations
  waveanim list

  # only entrance animations, as json
  waveanim list --category=entrance --json`,
	Args: cobra.NoArgs,
	RunE: listRun,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "restrict to category (attention, entrance, exit, custom)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func listEntries(category string) []animations.Entry {
	var rtn []animations.Entry
	for _, entry := range animations.All() {
		if category != "" && entry.Category != category {
			continue
		}
		rtn = append(rtn, entry)
	}
	return rtn
}

func listRun(cmd *cobra.Command, args []string) error {
	entries := listEntries(listCategory)
	if len(entries) == 0 {
		return fmt.Errorf("no animations found for category %q", listCategory)
	}
	if listJSON {
		jsonStr, err := utilfn.MarshalIndentNoHTMLString(entries, "", "  ")
		if err != nil {
			return err
		}
		WriteStdout("%s\n", jsonStr)
		return nil
	}
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ANIMATION"), bold.Sprint("COMPONENT"), bold.Sprint("CATEGORY"))
	for _, entry := range entries {
		tbl.AddRow(entry.Name, entry.Component, entry.Category)
	}
	WriteStdout("%s\n", tbl)
	return nil
}
