// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/timeline-engine/internal/convert"
	"github.com/pdiddy/timeline-engine/internal/tabular"
	"github.com/pdiddy/timeline-engine/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input>",
	Short: "Inspect a row source without converting it",
	Long: `Analyze loads a source the same way convert does and reports what it
finds: row and column counts, slide types, the year range, media usage,
and any problems that would fail or degrade a conversion.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source := args[0]
	httpCfg := types.HTTPConfig{UserAgent: "timeline-engine/" + version}

	table, err := tabular.Load(cmd.Context(), source, httpCfg)
	if err != nil {
		return err
	}

	fmt.Printf("Source: %s\n", source)
	if table.Delimiter != 0 {
		fmt.Printf("Delimiter: %q\n", table.Delimiter)
	}

	report := convert.Analyze(table.Header, table.Rows)
	report.Format(os.Stdout)
	return nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
