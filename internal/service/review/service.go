// Package review orchestrates the duplicate-review workflow around the pure
// dedup engine: load the collection, detect groups, merge an approved group
// and persist the outcome, and run pre-insert checks for new entries.
package review

import (
	"context"
	"log/slog"

	"github.com/shobdo/vocab-dedup/internal/config"
	"github.com/shobdo/vocab-dedup/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabularyRepo interface {
	ListAll(ctx context.Context) ([]domain.VocabularyRecord, error)
	ReplaceGroup(ctx context.Context, keepID string, merged domain.MergedVocabulary, removeIDs []string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the duplicate-review business logic.
type Service struct {
	log     *slog.Logger
	cfg     config.DedupConfig
	records vocabularyRepo
}

// New creates a review Service.
func New(log *slog.Logger, cfg config.DedupConfig, records vocabularyRepo) *Service {
	return &Service{
		log:     log,
		cfg:     cfg,
		records: records,
	}
}
