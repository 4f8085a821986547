// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the timeline-engine CLI: a
// converter from tabular row data (CSV, TSV, XLSX) to Timeline.js JSON
// documents, with template generation, source analysis, document
// validation, and a conversion-run history.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the timeline-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "timeline-engine",
	Short: "Convert spreadsheet rows to Timeline.js JSON",
	Long: `timeline-engine turns tabular row data into Timeline.js JSON documents.
Sources can be local CSV/TSV/semicolon files, XLSX workbooks, or remote URLs;
the delimiter is auto-detected. Each row is a title slide, a dated event, or
a background era.

Use convert for the conversion itself, template to generate a starter CSV,
analyze to inspect a source before converting, validate to check an existing
Timeline JSON file, and history to review past conversion runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./timeline-engine.yaml or ~/.config/timeline-engine/config.yaml)")
	rootCmd.PersistentFlags().String("history-dir", "", "directory for the conversion-run history database")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("timeline-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "timeline-engine"))
		}
	}

	viper.SetDefault("scale", "human")
	viper.SetDefault("history.dir", "history")

	viper.SetEnvPrefix("TIMELINE_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// historyDir resolves the history directory: flag first, then config.
func historyDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("history-dir"); dir != "" {
		return dir
	}
	return viper.GetString("history.dir")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
