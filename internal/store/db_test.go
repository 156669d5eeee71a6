package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Initialize(context.Background()))
	return s
}

func TestInitialize_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Initialize(ctx))
	require.NoError(t, s.Append(ctx, "hello", "hello", 0.5))
	require.NoError(t, s.Initialize(ctx))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "re-initializing must not drop existing rows")
}

func TestReadAll_EmptyStore(t *testing.T) {
	s := newTestStore(t)

	entries, err := s.ReadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	scores, err := s.Scores(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, scores)
	assert.Empty(t, scores)
}

func TestAppend_LastEntryMatches(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, "first text", "first text", 0.2))
	require.NoError(t, s.Append(ctx, "I love this product 123!!!", "I love product !!!", 0.8))

	entries, err := s.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	want := Entry{
		OriginalText:   "I love this product 123!!!",
		ProcessedText:  "I love product !!!",
		SentimentScore: 0.8,
	}
	if diff := cmp.Diff(want, entries[len(entries)-1]); diff != "" {
		t.Errorf("last entry mismatch (-want +got):\n%s", diff)
	}
}

func TestAppend_EmptyOriginalIsNoop(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, "", "", 0.5))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestAppend_AllowsEmptyProcessedText(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, "the 42", "", 0.5))

	entries, err := s.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].ProcessedText)
}

func TestAppend_DuplicatesAllowed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Append(ctx, "same", "same", 0.5))
	}

	entries, err := s.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestScores_InsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := []float64{0.9, 0.1, 0.5, 0.73}
	for _, score := range want {
		require.NoError(t, s.Append(ctx, "text", "text", score))
	}

	got, err := s.Scores(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
}

func TestReadAll_NoSchema_ReturnsErrNotInitialized(t *testing.T) {
	s, err := New(":memory:")
	require.NoError(t, err)
	defer s.Close()

	// Do NOT call Initialize.
	_, err = s.ReadAll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotInitialized), "got %v", err)

	err = s.Append(context.Background(), "x", "x", 0.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotInitialized), "got %v", err)
}

func TestEntriesSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "text_analysis.db")
	ctx := context.Background()

	s, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Initialize(ctx))
	require.NoError(t, s.Append(ctx, "great day", "great day", 0.81))
	require.NoError(t, s.Close())

	reopened, err := New(dbPath)
	require.NoError(t, err)
	defer reopened.Close()
	require.NoError(t, reopened.Initialize(ctx))

	entries, err := reopened.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{OriginalText: "great day", ProcessedText: "great day", SentimentScore: 0.81}}, entries)
}
