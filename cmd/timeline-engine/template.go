// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/timeline-engine/internal/convert"
	"github.com/pdiddy/timeline-engine/internal/tabular"
	"github.com/pdiddy/timeline-engine/pkg/types"
)

var templateCmd = &cobra.Command{
	Use:   "template [output]",
	Short: "Write a starter CSV with all recognized columns",
	Long: `Template writes a CSV file containing every column the converter
recognizes, pre-filled with a title slide, an event, and an era, ready
to edit in a spreadsheet and convert.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplate,
}

func runTemplate(cmd *cobra.Command, args []string) error {
	path := "timeline_template.csv"
	if len(args) == 1 {
		path = args[0]
	}

	if err := tabular.WriteCSV(path, types.Columns, convert.TemplateRows()); err != nil {
		return err
	}

	fmt.Printf("Wrote template with %d columns to %s\n", len(types.Columns), path)
	return nil
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
