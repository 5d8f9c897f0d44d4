package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shobdo/vocab-dedup/internal/domain"
)

const sampleExport = `[
  {
    "id": "w1",
    "english": "run",
    "bangla": "দৌড়",
    "partOfSpeech": "Verb",
    "synonyms": ["sprint"],
    "createdAt": "2025-05-01T10:00:00Z",
    "updatedAt": "2025-05-01T10:00:00Z"
  },
  {
    "id": "w2",
    "english": "Run",
    "bangla": "দৌড়ানো",
    "createdAt": "2025-05-02T10:00:00Z",
    "updatedAt": "2025-05-02T10:00:00Z"
  },
  {
    "id": "w3",
    "english": "walk",
    "bangla": "হাঁটা",
    "createdAt": "2025-05-03T10:00:00Z",
    "updatedAt": "2025-05-03T10:00:00Z"
  }
]`

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocabulary.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSnapshot_ListAll(t *testing.T) {
	t.Parallel()

	snap := New(writeExport(t, sampleExport))

	records, err := snap.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "w1", records[0].ID)
	assert.Equal(t, "run", records[0].English)
	assert.Equal(t, []string{"sprint"}, records[0].Synonyms)
}

func TestSnapshot_ListAll_MissingFile(t *testing.T) {
	t.Parallel()

	snap := New(filepath.Join(t.TempDir(), "nope.json"))
	_, err := snap.ListAll(context.Background())
	require.Error(t, err)
}

func TestSnapshot_ListAll_BadJSON(t *testing.T) {
	t.Parallel()

	snap := New(writeExport(t, "{not json"))
	_, err := snap.ListAll(context.Background())
	require.Error(t, err)
}

func TestSnapshot_ReplaceGroup(t *testing.T) {
	t.Parallel()

	path := writeExport(t, sampleExport)
	snap := New(path)
	ctx := context.Background()

	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	merged := domain.MergedVocabulary{
		English:   "run",
		Bangla:    "দৌড়",
		Synonyms:  []string{"sprint", "dash"},
		CreatedAt: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: now,
	}

	require.NoError(t, snap.ReplaceGroup(ctx, "w1", merged, []string{"w2"}))

	records, err := snap.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "w1", records[0].ID)
	assert.Equal(t, []string{"sprint", "dash"}, records[0].Synonyms)
	assert.True(t, records[0].UpdatedAt.Equal(now))
	assert.Equal(t, "w3", records[1].ID)
}

func TestSnapshot_ReplaceGroup_KeepIDMissing(t *testing.T) {
	t.Parallel()

	snap := New(writeExport(t, sampleExport))
	err := snap.ReplaceGroup(context.Background(), "ghost", domain.MergedVocabulary{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
