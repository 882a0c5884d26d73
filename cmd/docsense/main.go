// Package main is the entry point for the docsense CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/athapong/docsense/pkg/config"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "docsense",
	Short: "Single-document text analysis service",
	Long: `docsense analyzes one uploaded document at a time: word and sentence
counts, key phrases, sentiment, named entities, an extractive summary and a
reading-time estimate.

Settings come from an env file and DOCSENSE_* environment variables; flags
override them.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().String("env", ".env", "path to environment file")
	rootCmd.PersistentFlags().String("log-level", "", "logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("surface", "", "analysis surface (minimal, rich, all)")
	rootCmd.PersistentFlags().String("sentiment-mode", "", "sentiment convention (comparative, lexicon-sum, vader)")
	rootCmd.PersistentFlags().String("tagger", "", "entity tagger (rules, prose)")
}

// loadConfig loads the env file and environment, then applies flags set on cmd
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	overrides := map[string]*string{
		"log-level":      &cfg.LogLevel,
		"surface":        &cfg.Surface,
		"sentiment-mode": &cfg.SentimentMode,
		"tagger":         &cfg.EntityTagger,
	}
	for name, field := range overrides {
		if cmd.Flags().Changed(name) {
			*field, _ = cmd.Flags().GetString(name)
		}
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
