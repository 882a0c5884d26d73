package analysis

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var (
	analysisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "analysis_duration_seconds",
			Help: "Time spent analyzing documents",
		},
		[]string{"status"},
	)

	stageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "analysis_stage_duration_seconds",
			Help: "Time spent in each analysis stage",
		},
		[]string{"stage"},
	)

	documentsAnalyzedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_documents_total",
			Help: "Total number of documents analyzed",
		},
		[]string{"status"},
	)

	stageFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_stage_failures_total",
			Help: "Number of failed analysis stages",
		},
		[]string{"stage", "required"},
	)
)

func init() {
	prometheus.MustRegister(analysisDuration)
	prometheus.MustRegister(stageDuration)
	prometheus.MustRegister(documentsAnalyzedTotal)
	prometheus.MustRegister(stageFailuresTotal)
}

// WordsPerMinute is the reading speed used for the reading time estimate
const WordsPerMinute = 200

// Toolkit holds the stage implementations an Analyzer runs.
// Every tool must be safe for concurrent use and keep no state between calls.
type Toolkit struct {
	Tokenizer  Tokenizer
	KeyPhrases KeyPhraseExtractor
	Sentiment  SentimentScorer
	Entities   EntityTagger
	Summarizer Summarizer
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithStages selects which optional stages run
func WithStages(stages Stage) Option {
	return func(a *Analyzer) {
		a.stages = stages
	}
}

// WithRequired selects which enabled stages fail the whole analysis when they fail.
// Enabled stages outside this set are best-effort.
func WithRequired(stages Stage) Option {
	return func(a *Analyzer) {
		a.required = stages
		a.requiredSet = true
	}
}

// WithWorkers bounds the number of stages running at once
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.workers = n
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *logrus.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// Analyzer runs the document analysis pipeline
type Analyzer struct {
	tools       Toolkit
	stages      Stage
	required    Stage
	requiredSet bool
	workers     int
	logger      *logrus.Logger
}

// NewAnalyzer creates an analyzer over the given tools.
// By default it runs the rich surface and every enabled stage is required.
func NewAnalyzer(tools Toolkit, opts ...Option) (*Analyzer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	a := &Analyzer{
		tools:   tools,
		stages:  RichSurface,
		workers: runtime.NumCPU(),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	if !a.requiredSet {
		a.required = a.stages
	}
	a.required &= a.stages

	if tools.Tokenizer == nil {
		return nil, fmt.Errorf("analyzer requires a tokenizer")
	}
	checks := []struct {
		stage Stage
		ok    bool
	}{
		{StageKeyPhrases, tools.KeyPhrases != nil},
		{StageSentiment, tools.Sentiment != nil},
		{StageEntities, tools.Entities != nil},
		{StageSummary, tools.Summarizer != nil},
	}
	for _, c := range checks {
		if a.stages.Has(c.stage) && !c.ok {
			return nil, fmt.Errorf("stage %s is enabled but has no implementation", c.stage)
		}
	}

	return a, nil
}

// Stages returns the enabled stage set
func (a *Analyzer) Stages() Stage {
	return a.stages
}

// Required returns the stages whose failure fails the analysis
func (a *Analyzer) Required() Stage {
	return a.required
}

type stageJob struct {
	stage Stage
	run   func(ctx context.Context) (func(*Result), error)
}

type stageOutcome struct {
	apply func(*Result)
	err   error
}

// Analyze runs every enabled stage over text and assembles the result.
// It returns ErrEmptyDocument for empty or whitespace-only text and an
// *AnalysisFailedError when a required stage fails.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*Result, error) {
	start := time.Now()
	status := "success"
	defer func() {
		analysisDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
		documentsAnalyzedTotal.WithLabelValues(status).Inc()
	}()

	if strings.TrimSpace(text) == "" {
		status = "empty"
		return nil, ErrEmptyDocument
	}

	a.logger.WithFields(logrus.Fields{
		"content_length": len(text),
		"stages":         a.stages.String(),
	}).Info("Starting document analysis")

	words := a.tools.Tokenizer.Words(text)
	sentences := a.tools.Tokenizer.Sentences(text)

	result := &Result{
		WordCount:     len(words),
		SentenceCount: len(sentences),
		KeyPhrases:    make([]TermScore, 0),
		ReadingTime:   ReadingTime(len(words)),
		Stages:        StageReport{Ran: make([]string, 0)},
	}
	if a.stages.Has(StageCharCount) {
		chars := utf8.RuneCountInString(text)
		result.CharacterCount = &chars
		result.Stages.Ran = append(result.Stages.Ran, StageCharCount.String())
	}

	jobs := a.jobs(text)
	outcomes := make([]stageOutcome, len(jobs))
	sem := make(chan struct{}, a.workers)
	var wg sync.WaitGroup

	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job stageJob) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			stageTimer := prometheus.NewTimer(stageDuration.WithLabelValues(job.stage.String()))
			defer stageTimer.ObserveDuration()

			outcomes[i] = runStage(ctx, job)
		}(i, job)
	}
	wg.Wait()

	for i, job := range jobs {
		name := job.stage.String()
		out := outcomes[i]
		if out.err != nil {
			required := a.required.Has(job.stage)
			stageFailuresTotal.WithLabelValues(name, fmt.Sprint(required)).Inc()
			entry := a.logger.WithError(out.err).WithField("stage", name)
			if required {
				entry.Error("Required analysis stage failed")
				status = "error"
				return nil, &AnalysisFailedError{Stage: name, Err: out.err}
			}
			entry.Warn("Best-effort analysis stage failed")
			if result.Stages.Failed == nil {
				result.Stages.Failed = make(map[string]string)
			}
			result.Stages.Failed[name] = out.err.Error()
			continue
		}
		out.apply(result)
		result.Stages.Ran = append(result.Stages.Ran, name)
	}

	a.logger.WithFields(logrus.Fields{
		"word_count":     result.WordCount,
		"sentence_count": result.SentenceCount,
		"phrases_count":  len(result.KeyPhrases),
	}).Info("Document analysis completed")

	return result, nil
}

func (a *Analyzer) jobs(text string) []stageJob {
	jobs := make([]stageJob, 0, 4)

	if a.stages.Has(StageKeyPhrases) {
		jobs = append(jobs, stageJob{stage: StageKeyPhrases, run: func(ctx context.Context) (func(*Result), error) {
			phrases := a.tools.KeyPhrases.KeyPhrases(text)
			return func(r *Result) {
				if phrases != nil {
					r.KeyPhrases = phrases
				}
			}, nil
		}})
	}

	if a.stages.Has(StageSentiment) {
		jobs = append(jobs, stageJob{stage: StageSentiment, run: func(ctx context.Context) (func(*Result), error) {
			sentiment := a.tools.Sentiment.Score(text)
			return func(r *Result) { r.Sentiment = &sentiment }, nil
		}})
	}

	if a.stages.Has(StageEntities) {
		jobs = append(jobs, stageJob{stage: StageEntities, run: func(ctx context.Context) (func(*Result), error) {
			entities, err := a.tools.Entities.Extract(ctx, text)
			if err != nil {
				return nil, err
			}
			return func(r *Result) { r.Entities = &entities }, nil
		}})
	}

	if a.stages.Has(StageSummary) {
		jobs = append(jobs, stageJob{stage: StageSummary, run: func(ctx context.Context) (func(*Result), error) {
			summary := a.tools.Summarizer.Summarize(text)
			return func(r *Result) { r.Summary = &summary }, nil
		}})
	}

	return jobs
}

func runStage(ctx context.Context, job stageJob) (out stageOutcome) {
	defer func() {
		if rec := recover(); rec != nil {
			out = stageOutcome{err: fmt.Errorf("stage panicked: %v", rec)}
		}
	}()

	apply, err := job.run(ctx)
	return stageOutcome{apply: apply, err: err}
}

// ReadingTime estimates whole reading minutes at WordsPerMinute, never less than one
func ReadingTime(wordCount int) int {
	minutes := (wordCount + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
