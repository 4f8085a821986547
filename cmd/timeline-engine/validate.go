// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/timeline-engine/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <timeline.json>",
	Short: "Check a Timeline.js JSON document against the schema",
	Long: `Validate checks an existing Timeline.js JSON file against the document
schema: required fields, date part ranges, and the rule that a document
must carry a title slide or at least one event.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := schema.ValidateFile(args[0]); err != nil {
		return err
	}
	fmt.Println("Timeline JSON is valid.")
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
