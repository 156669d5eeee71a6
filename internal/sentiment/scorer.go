// Package sentiment scores text with the VADER lexicon and rule-based
// sentiment model.
package sentiment

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/jonreiter/govader"
)

// ErrLexiconUnavailable is returned by New when the VADER lexicon did not
// load. It is a fatal startup condition.
var ErrLexiconUnavailable = errors.New("sentiment lexicon unavailable")

// Compound thresholds recommended by the VADER authors.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Scores is the four-way VADER breakdown. Positive, Negative and Neutral
// are proportions summing to 1 (or all zero for empty text); Compound is
// the normalized valence in [-1, 1], rounded to four decimals.
type Scores struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Compound float64 `json:"compound"`
}

// Normalized returns the compound score rescaled to [0, 1].
func (s Scores) Normalized() float64 {
	return NormalizeCompound(s.Compound)
}

// Label classifies the compound score as positive, negative or neutral.
func (s Scores) Label() string {
	switch {
	case s.Compound >= positiveThreshold:
		return "positive"
	case s.Compound <= negativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

// Scorer wraps a VADER analyzer. It holds no per-call state.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// New builds a Scorer and verifies the lexicon is usable.
func New() (*Scorer, error) {
	s := &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}

	// A lexicon that failed to load scores everything as zero.
	if probe := s.Score("good"); probe.Compound <= 0 {
		return nil, ErrLexiconUnavailable
	}

	return s, nil
}

// Score returns the sentiment breakdown for text. Blank text scores all
// zeros, which rescales to 0.5.
func (s *Scorer) Score(text string) Scores {
	if strings.TrimSpace(text) == "" {
		return Scores{}
	}
	p := s.analyzer.PolarityScores(text)
	return Scores{
		Positive: p.Positive,
		Negative: p.Negative,
		Neutral:  p.Neutral,
		Compound: math.Round(p.Compound*1e4) / 1e4,
	}
}

// NormalizeCompound maps a compound score from [-1, 1] to [0, 1] and
// rounds it to two decimal places. Rounding is applied to the exact
// binary value with ties to even, so 0.125 becomes 0.12.
func NormalizeCompound(compound float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat((1+compound)/2, 'f', 2, 64), 64)
	return math.Max(0, math.Min(1, v))
}
