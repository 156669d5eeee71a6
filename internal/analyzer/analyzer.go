package analyzer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/blackwell-systems/textsentiment/internal/sentiment"
	"github.com/blackwell-systems/textsentiment/internal/store"
)

// EntryStore is the persistence the Analyzer needs. *store.Store satisfies it.
type EntryStore interface {
	Append(ctx context.Context, originalText, processedText string, score float64) error
	ReadAll(ctx context.Context) ([]store.Entry, error)
	Scores(ctx context.Context) ([]float64, error)
}

// Normalizer strips text down to its scoring-relevant tokens.
type Normalizer interface {
	Normalize(text string) string
}

// Scorer produces the VADER breakdown for normalized text.
type Scorer interface {
	Score(text string) sentiment.Scores
}

// Analyzer runs the submit flow and serves the read-back views.
type Analyzer struct {
	store      EntryStore
	normalizer Normalizer
	scorer     Scorer
	logger     *zap.Logger
}

// New creates a new Analyzer instance with the given collaborators.
func New(store EntryStore, normalizer Normalizer, scorer Scorer, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		store:      store,
		normalizer: normalizer,
		scorer:     scorer,
		logger:     logger,
	}
}

// Submit normalizes, scores and stores text. Empty text is ignored and
// yields a nil Result with no error.
func (a *Analyzer) Submit(ctx context.Context, text string) (*Result, error) {
	if text == "" {
		a.logger.Debug("ignoring empty submission")
		return nil, nil
	}

	processed := a.normalizer.Normalize(text)
	scores := a.scorer.Score(processed)
	normalized := sentiment.NormalizeCompound(scores.Compound)

	if err := a.store.Append(ctx, text, processed, normalized); err != nil {
		return nil, fmt.Errorf("failed to store entry: %w", err)
	}

	a.logger.Debug("stored entry",
		zap.Int("original_len", len(text)),
		zap.String("processed", processed),
		zap.Float64("compound", scores.Compound),
		zap.Float64("sentiment_score", normalized))

	return &Result{
		Entry: store.Entry{
			OriginalText:   text,
			ProcessedText:  processed,
			SentimentScore: normalized,
		},
		Scores: scores,
	}, nil
}

// Entries returns every stored entry in submission order.
func (a *Analyzer) Entries(ctx context.Context) ([]store.Entry, error) {
	entries, err := a.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

// Series returns the stored sentiment scores in submission order, the
// input to the line chart.
func (a *Analyzer) Series(ctx context.Context) ([]float64, error) {
	scores, err := a.store.Scores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}
	return scores, nil
}
