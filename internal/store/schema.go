package store

const schema = `
CREATE TABLE IF NOT EXISTS TextEntries (
    original_text TEXT NOT NULL,
    processed_text TEXT NOT NULL,
    sentiment_score REAL NOT NULL
);
`
