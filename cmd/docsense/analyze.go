package main

import (
	"encoding/json"
	"mime"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/athapong/docsense/pkg/ingest"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a PDF or TXT file and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		// logs go to stderr so stdout stays valid JSON
		logger := cfg.NewLogger()
		logger.SetOutput(os.Stderr)

		path := args[0]
		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", path)
		}

		extractor := ingest.NewExtractor(cfg.MaxUploadBytes, logger)
		doc, err := extractor.Extract(cmd.Context(), ingest.Upload{
			Filename: filepath.Base(path),
			MimeType: mime.TypeByExtension(filepath.Ext(path)),
			Content:  content,
		})
		if err != nil {
			return err
		}

		analyzer, err := cfg.NewAnalyzer(logger)
		if err != nil {
			return err
		}
		result, err := analyzer.Analyze(cmd.Context(), doc.Text)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
