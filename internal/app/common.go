package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/blackwell-systems/textsentiment/internal/analyzer"
	"github.com/blackwell-systems/textsentiment/internal/sentiment"
	"github.com/blackwell-systems/textsentiment/internal/store"
	"github.com/blackwell-systems/textsentiment/internal/textproc"
)

// openAnalyzer opens and initializes the store and wires the analyzer.
// The caller must close the returned store.
func openAnalyzer(ctx context.Context) (*analyzer.Analyzer, *store.Store, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, nil, err
	}

	st, err := store.New(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := st.Initialize(ctx); err != nil {
		st.Close()
		return nil, nil, err
	}

	scorer, err := sentiment.New()
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	log := logger
	if log == nil {
		log = zap.NewNop()
	}
	if n, err := st.Count(ctx); err == nil {
		log.Debug("database ready", zap.String("path", path), zap.Int64("entries", n))
	} else {
		log.Warn("failed to count entries", zap.Error(err))
	}

	return analyzer.New(st, textproc.Default(), scorer, log), st, nil
}
