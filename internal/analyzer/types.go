package analyzer

import (
	"github.com/blackwell-systems/textsentiment/internal/sentiment"
	"github.com/blackwell-systems/textsentiment/internal/store"
)

// Result is the outcome of one stored submission.
type Result struct {
	store.Entry
	Scores sentiment.Scores `json:"scores"`
}
