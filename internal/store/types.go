package store

// Entry is one analyzed submission. Rows are never updated or deleted.
type Entry struct {
	OriginalText   string  `json:"original_text"`
	ProcessedText  string  `json:"processed_text"`
	SentimentScore float64 `json:"sentiment_score"`
}
