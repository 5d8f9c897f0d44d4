// Package jsonfile stores a vocabulary collection as a JSON array on disk,
// the format the admin application exports from its document store. It backs
// the offline CLIs; the live store itself stays outside this repository.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shobdo/vocab-dedup/internal/domain"
)

// Snapshot reads and rewrites a JSON export of VocabularyRecord values.
type Snapshot struct {
	path string
}

// New creates a Snapshot over the given file path.
func New(path string) *Snapshot {
	return &Snapshot{path: path}
}

// ListAll loads every record from the snapshot file.
func (s *Snapshot) ListAll(_ context.Context) ([]domain.VocabularyRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}

	var records []domain.VocabularyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", s.path, err)
	}
	return records, nil
}

// ReplaceGroup rewrites the snapshot with the merged record stored under
// keepID and every record in removeIDs dropped. The file is replaced
// atomically via a temp file in the same directory.
func (s *Snapshot) ReplaceGroup(ctx context.Context, keepID string, merged domain.MergedVocabulary, removeIDs []string) error {
	records, err := s.ListAll(ctx)
	if err != nil {
		return err
	}

	remove := make(map[string]struct{}, len(removeIDs))
	for _, id := range removeIDs {
		remove[id] = struct{}{}
	}

	kept := false
	out := records[:0]
	for _, rec := range records {
		if _, gone := remove[rec.ID]; gone {
			continue
		}
		if rec.ID == keepID {
			rec = apply(rec.ID, merged)
			kept = true
		}
		out = append(out, rec)
	}
	if !kept {
		return fmt.Errorf("record %s: %w", keepID, domain.ErrNotFound)
	}

	return s.write(out)
}

func (s *Snapshot) write(records []domain.VocabularyRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace snapshot %s: %w", s.path, err)
	}
	return nil
}

// apply rebuilds a full record from a merge result under the surviving ID.
func apply(id string, m domain.MergedVocabulary) domain.VocabularyRecord {
	return domain.VocabularyRecord{
		ID:            id,
		English:       m.English,
		Bangla:        m.Bangla,
		PartOfSpeech:  m.PartOfSpeech,
		Examples:      m.Examples,
		Synonyms:      m.Synonyms,
		Antonyms:      m.Antonyms,
		RelatedWords:  m.RelatedWords,
		Explanation:   m.Explanation,
		Pronunciation: m.Pronunciation,
		VerbForms:     m.VerbForms,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
