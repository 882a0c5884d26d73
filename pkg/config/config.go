// Package config loads service settings from an env file and DOCSENSE_*
// environment variables.
package config

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/athapong/docsense/pkg/analysis"
	"github.com/athapong/docsense/pkg/analysis/processors"
	"github.com/athapong/docsense/pkg/ingest"
	"github.com/athapong/docsense/pkg/storage"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "DOCSENSE"

// Store backends
const (
	StoreNone  = "none"
	StoreJSON  = "json"
	StoreNeo4j = "neo4j"
)

// Config holds the service settings
type Config struct {
	Port           int
	UploadDir      string
	MaxUploadBytes int64

	Surface        string
	RequiredStages string
	SentimentMode  string
	EmptyPhrases   string
	TermFrequency  string
	EntityTagger   string
	Workers        int

	Store         string
	StorePath     string
	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string

	LogLevel  string
	LogFormat string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("max_upload_bytes", ingest.DefaultMaxBytes)
	v.SetDefault("surface", "rich")
	v.SetDefault("required_stages", "")
	v.SetDefault("sentiment_mode", string(analysis.ModeComparative))
	v.SetDefault("empty_phrases", string(processors.PhrasesSentinel))
	v.SetDefault("term_frequency", string(processors.TFRaw))
	v.SetDefault("entity_tagger", processors.TaggerRules)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("store", StoreNone)
	v.SetDefault("store_path", "records")
	v.SetDefault("neo4j_uri", "bolt://localhost:7687")
	v.SetDefault("neo4j_user", "neo4j")
	v.SetDefault("neo4j_password", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

// Load reads envFile if it exists, then the environment. A missing env file
// is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to load env file %s", envFile)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Port:           v.GetInt("port"),
		UploadDir:      v.GetString("upload_dir"),
		MaxUploadBytes: v.GetInt64("max_upload_bytes"),
		Surface:        v.GetString("surface"),
		RequiredStages: v.GetString("required_stages"),
		SentimentMode:  v.GetString("sentiment_mode"),
		EmptyPhrases:   v.GetString("empty_phrases"),
		TermFrequency:  v.GetString("term_frequency"),
		EntityTagger:   v.GetString("entity_tagger"),
		Workers:        v.GetInt("workers"),
		Store:          strings.ToLower(v.GetString("store")),
		StorePath:      v.GetString("store_path"),
		Neo4jURI:       v.GetString("neo4j_uri"),
		Neo4jUser:      v.GetString("neo4j_user"),
		Neo4jPassword:  v.GetString("neo4j_password"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      strings.ToLower(v.GetString("log_format")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects out-of-range numbers and unknown enum values
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.Errorf("invalid port %d", c.Port)
	}
	if c.MaxUploadBytes <= 0 {
		return errors.Errorf("invalid max upload bytes %d", c.MaxUploadBytes)
	}
	if c.UploadDir == "" {
		return errors.New("upload dir must not be empty")
	}
	if _, err := c.Stages(); err != nil {
		return err
	}
	if _, err := c.Required(); err != nil {
		return err
	}
	if _, err := processors.ParseSentimentMode(c.SentimentMode); err != nil {
		return err
	}

	switch processors.EmptyPhrases(c.EmptyPhrases) {
	case processors.PhrasesSentinel, processors.PhrasesEmpty:
	default:
		return errors.Errorf("unknown empty phrases mode %q", c.EmptyPhrases)
	}
	switch processors.TermFrequency(c.TermFrequency) {
	case processors.TFRaw, processors.TFNormalized:
	default:
		return errors.Errorf("unknown term frequency %q", c.TermFrequency)
	}
	switch c.EntityTagger {
	case processors.TaggerRules, processors.TaggerProse:
	default:
		return errors.Errorf("unknown entity tagger %q", c.EntityTagger)
	}

	switch c.Store {
	case StoreNone:
	case StoreJSON:
		if c.StorePath == "" {
			return errors.New("json store needs a store path")
		}
	case StoreNeo4j:
		if c.Neo4jURI == "" {
			return errors.New("neo4j store needs a URI")
		}
	default:
		return errors.Errorf("unknown store %q", c.Store)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// Stages returns the stages enabled by the configured surface
func (c *Config) Stages() (analysis.Stage, error) {
	return analysis.ParseSurface(c.Surface)
}

// Required returns the stages whose failure fails a request. An empty
// setting makes every enabled stage required.
func (c *Config) Required() (analysis.Stage, error) {
	if strings.TrimSpace(c.RequiredStages) == "" {
		return c.Stages()
	}
	return analysis.ParseStages(c.RequiredStages)
}

// NewLogger builds the service logger
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	if c.LogFormat == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// NewAnalyzer builds an analyzer with the configured stages and conventions
func (c *Config) NewAnalyzer(logger *logrus.Logger) (*analysis.Analyzer, error) {
	mode, err := processors.ParseSentimentMode(c.SentimentMode)
	if err != nil {
		return nil, err
	}
	tools, err := processors.NewToolkit(processors.ToolkitConfig{
		SentimentMode: mode,
		TermFrequency: processors.TermFrequency(c.TermFrequency),
		EmptyPhrases:  processors.EmptyPhrases(c.EmptyPhrases),
		Tagger:        c.EntityTagger,
		Logger:        logger,
	})
	if err != nil {
		return nil, err
	}

	stages, err := c.Stages()
	if err != nil {
		return nil, err
	}
	required, err := c.Required()
	if err != nil {
		return nil, err
	}

	return analysis.NewAnalyzer(tools,
		analysis.WithStages(stages),
		analysis.WithRequired(required),
		analysis.WithWorkers(c.Workers),
		analysis.WithLogger(logger),
	)
}

// NewStore opens the configured record store
func (c *Config) NewStore(ctx context.Context) (storage.Store, error) {
	switch c.Store {
	case StoreJSON:
		return storage.NewJSONStore(c.StorePath), nil
	case StoreNeo4j:
		store, err := storage.NewNeo4jStore(c.Neo4jURI, c.Neo4jUser, c.Neo4jPassword)
		if err != nil {
			return nil, err
		}
		if err := store.Connect(ctx); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil
	default:
		return storage.NopStore{}, nil
	}
}
