// Package output provides terminal output utilities for textsentiment.
//
// This package includes:
//   - Table rendering for sentiment breakdowns and stored entries
//   - A line chart of stored scores over insertion order
//   - Styled headings for submit results
//
// All renderers return strings so callers decide where output goes.
// ANSI color codes are only emitted when stdout is a terminal.
package output

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/textsentiment/internal/sentiment"
	"github.com/blackwell-systems/textsentiment/internal/store"
)

// NoDataMessage is shown by the read-back views when the store is empty.
const NoDataMessage = "No data available in the database"

// AboutText describes the tool in the about view.
const AboutText = "This app analyzes text sentiment using VADER and stores results in an SQLite database."

// ANSI color codes for score display
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderResultHeading renders the heading shown after a submit.
func RenderResultHeading(score float64) string {
	text := fmt.Sprintf("Sentiment Results (Sentiment Score: %s)", formatScore(score))
	if !IsColorEnabled() {
		return text + "\n"
	}
	return headingStyle.Render(text) + "\n"
}

// RenderScoreTable renders the positive, negative and neutral proportions.
// The compound score is reported by the heading, not the table.
func RenderScoreTable(s sentiment.Scores) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-16s %s\n", "Sentiment Type", "Score"))
	sb.WriteString(strings.Repeat("─", 24))
	sb.WriteString("\n")

	rows := []struct {
		label string
		value float64
	}{
		{"Positive", s.Positive},
		{"Negative", s.Negative},
		{"Neutral", s.Neutral},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-16s %.3f\n", r.label, r.value))
	}

	return sb.String()
}

// RenderEntryTable renders stored entries in the order given.
func RenderEntryTable(entries []store.Entry) string {
	if len(entries) == 0 {
		return NoDataMessage + "\n"
	}

	var sb strings.Builder

	sb.WriteString("Stored Entries:\n")
	sb.WriteString(fmt.Sprintf("%-4s %-36s %-30s %s\n",
		"#", "Original Text", "Processed Text", "Sentiment Score"))
	sb.WriteString(strings.Repeat("─", 88))
	sb.WriteString("\n")

	for i, e := range entries {
		score := formatScore(e.SentimentScore)
		sb.WriteString(fmt.Sprintf("%-4d %s %s %s\n",
			i+1,
			pad(truncate(flatten(e.OriginalText), 36), 36),
			pad(truncate(flatten(e.ProcessedText), 30), 30),
			colorize(scoreColor(e.SentimentScore), score)))
	}

	sb.WriteString(fmt.Sprintf("\n%s %s\n", humanize.Comma(int64(len(entries))), pluralize(len(entries), "entry", "entries")))

	return sb.String()
}

// formatScore prints a stored score the way it was rounded: two decimals.
func formatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

// scoreColor maps a [0,1] score to green above neutral, red below.
func scoreColor(score float64) string {
	switch {
	case score > 0.5:
		return colorGreen
	case score < 0.5:
		return colorRed
	default:
		return colorYellow
	}
}

// flatten collapses newlines and runs of whitespace so a row stays on one line.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate shortens s to maxLen runes, marking the cut with "...".
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// pad right-pads s with spaces to width runes.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
