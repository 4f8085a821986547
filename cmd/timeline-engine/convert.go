// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/timeline-engine/internal/convert"
	"github.com/pdiddy/timeline-engine/internal/history"
	"github.com/pdiddy/timeline-engine/internal/media"
	"github.com/pdiddy/timeline-engine/internal/tabular"
	"github.com/pdiddy/timeline-engine/pkg/types"
)

// maxShownWarnings bounds the warning listing on the console.
const maxShownWarnings = 5

var convertCmd = &cobra.Command{
	Use:   "convert <input> [output]",
	Short: "Convert a row source to a Timeline.js document",
	Long: `Convert reads a tabular source (CSV/TSV/semicolon file, XLSX workbook,
or http(s) URL), builds a Timeline.js document from its rows, and writes it
next to the input as <input>_timeline.json unless an output path is given.

By default the first bad row aborts the conversion. With --strict every bad
row is reported and skipped, and the run fails at the end if any occurred.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]

	scale := types.Scale(stringSetting(cmd, "scale", "scale"))
	if !scale.Valid() {
		return fmt.Errorf("invalid scale %q: use human or cosmological", scale)
	}
	strict := boolSetting(cmd, "strict", "strict")
	format, _ := cmd.Flags().GetString("format")
	showStats, _ := cmd.Flags().GetBool("stats")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	outPath := defaultOutput(source, format)
	if len(args) == 2 {
		outPath = args[1]
	}

	cfg := types.ConvertConfig{Scale: scale, Strict: strict}
	httpCfg := types.HTTPConfig{UserAgent: "timeline-engine/" + version}

	started := time.Now().UTC()

	table, err := tabular.Load(cmd.Context(), source, httpCfg)
	if err != nil {
		return err
	}

	res, convErr := convert.Convert(table.Header, table.Rows, cfg)

	if !noHistory {
		recordRun(cmd, source, outPath, cfg, started, res, convErr)
	}

	printWarnings(res.Warnings)
	if convErr != nil {
		return convErr
	}

	data, err := encodeDocument(res.Document, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	doc := res.Document
	titles := 0
	if doc.Title != nil {
		titles = 1
	}
	fmt.Printf("Converted %s -> %s\n", source, outPath)
	fmt.Printf("  title slides: %d\n", titles)
	fmt.Printf("  events:       %d\n", len(doc.Events))
	fmt.Printf("  eras:         %d\n", len(doc.Eras))

	if showStats {
		printMediaStats(doc)
	}
	return nil
}

// defaultOutput derives the output path from the source: base name with
// the extension replaced by _timeline.json (or .yaml).
func defaultOutput(source, format string) string {
	base := source
	if strings.Contains(source, "://") {
		base = filepath.Base(strings.SplitN(source, "?", 2)[0])
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	ext := ".json"
	if format == "yaml" {
		ext = ".yaml"
	}
	return base + "_timeline" + ext
}

func encodeDocument(doc *types.TimelineDocument, format string) ([]byte, error) {
	switch format {
	case "json", "":
		return json.MarshalIndent(doc, "", "  ")
	case "yaml":
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "Warnings (%d):\n", len(warnings))
	for i, w := range warnings {
		if i == maxShownWarnings {
			fmt.Fprintf(os.Stderr, "  ... and %d more warnings\n", len(warnings)-maxShownWarnings)
			break
		}
		fmt.Fprintf(os.Stderr, "  %s\n", w)
	}
}

// printMediaStats tallies the document's media URLs by detected kind.
func printMediaStats(doc *types.TimelineDocument) {
	kinds := map[string]int{}
	tally := func(m *types.Media) {
		if m != nil && m.URL != "" {
			kinds[media.Detect(m.URL).Name]++
		}
	}
	if doc.Title != nil {
		tally(doc.Title.Media)
	}
	for i := range doc.Events {
		tally(doc.Events[i].Media)
	}
	if len(kinds) == 0 {
		return
	}

	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Media types detected:")
	for _, name := range names {
		fmt.Printf("  %-20s %d\n", name, kinds[name])
	}
}

// recordRun logs the conversion outcome to the history store. History
// failures only warn; they never fail the conversion itself.
func recordRun(cmd *cobra.Command, source, outPath string, cfg types.ConvertConfig, started time.Time, res convert.Result, convErr error) {
	store, err := history.NewStore(types.HistoryConfig{Dir: historyDir(cmd)})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	run := history.Run{
		StartedAt: started,
		Source:    source,
		Scale:     string(cfg.Scale),
		Strict:    cfg.Strict,
		Warnings:  len(res.Warnings),
		Status:    history.StatusOK,
	}
	if convErr != nil {
		run.Status = history.StatusFailed
		run.Errors = errorCount(convErr)
	} else {
		run.Output = outPath
		if res.Document.Title != nil {
			run.Titles = 1
		}
		run.Events = len(res.Document.Events)
		run.Eras = len(res.Document.Eras)
	}

	if _, err := store.Record(context.Background(), run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording run: %v\n", err)
	}
}

// errorCount extracts how many row errors a conversion failure carries.
func errorCount(err error) int {
	var agg *convert.AggregateError
	if errors.As(err, &agg) {
		return len(agg.Errors)
	}
	var re *convert.RowError
	if errors.As(err, &re) {
		return 1
	}
	return 0
}

// stringSetting resolves a string option: explicit flag first, then the
// config file / environment, then the flag default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	v, _ := cmd.Flags().GetBool(flag)
	return v
}

func init() {
	convertCmd.Flags().String("scale", "human", "timeline scale: human or cosmological")
	convertCmd.Flags().Bool("strict", false, "report and skip bad rows instead of aborting on the first")
	convertCmd.Flags().String("format", "json", "output format: json or yaml")
	convertCmd.Flags().Bool("stats", false, "print detected media types after converting")
	convertCmd.Flags().Bool("no-history", false, "do not record this run in the history database")

	rootCmd.AddCommand(convertCmd)
}
