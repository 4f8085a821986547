// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/timeline-engine/internal/history"
	"github.com/pdiddy/timeline-engine/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past conversion runs",
	Long: `History lists recorded conversion runs, newest first: when each ran,
what it converted, the slide counts, and whether it succeeded.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	store, err := history.NewStore(types.HistoryConfig{Dir: historyDir(cmd)})
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(runs); err != nil {
			return fmt.Errorf("encoding runs: %w", err)
		}
		return nil
	}

	history.FormatRuns(runs, os.Stdout)
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum number of runs to show (0 for the default)")
	historyCmd.Flags().Bool("json", false, "print runs as JSON instead of a table")

	rootCmd.AddCommand(historyCmd)
}
