package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/athapong/docsense/pkg/ingest"
	"github.com/athapong/docsense/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP upload service",
	Long: `Serve accepts PDF and TXT uploads on POST /api/upload (multipart field
"document") and answers with the document's analysis. GET /healthz and
GET /metrics are served alongside.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logger := cfg.NewLogger()
		logger.WithFields(logrus.Fields{
			"surface":        cfg.Surface,
			"sentiment_mode": cfg.SentimentMode,
			"tagger":         cfg.EntityTagger,
			"store":          cfg.Store,
		}).Info("Starting docsense")

		analyzer, err := cfg.NewAnalyzer(logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, err := cfg.NewStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		handler := server.NewHandler(
			logger,
			ingest.NewExtractor(cfg.MaxUploadBytes, logger),
			analyzer,
			store,
			cfg.UploadDir,
		)

		srv := server.New(logger, cfg.Port, server.NewRouter(logger, handler))
		if err := srv.Run(ctx); err != nil {
			logger.WithError(err).Error("Server stopped")
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to listen on")

	rootCmd.AddCommand(serveCmd)
}
