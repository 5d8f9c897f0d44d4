package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shobdo/vocab-dedup/internal/dedup"
	"github.com/shobdo/vocab-dedup/internal/domain"
)

// MergeOutcome reports a persisted merge: the merged record, the original ID
// it was stored under, and the IDs removed from the collection.
type MergeOutcome struct {
	Merged     domain.MergedVocabulary `json:"merged"`
	KeptID     string                  `json:"keptId"`
	RemovedIDs []string                `json:"removedIds"`
}

// MergeGroup collapses an approved duplicate group into one canonical record
// and persists the result. The merged record is stored under the ID of the
// group's most complete member; every other member is removed.
func (s *Service) MergeGroup(ctx context.Context, group domain.DuplicateGroup) (*MergeOutcome, error) {
	if len(group.Duplicates) < 2 {
		return nil, domain.NewValidationError("duplicates", "a duplicate group needs at least two records")
	}

	base, err := dedup.MostComplete(group.Duplicates)
	if err != nil {
		return nil, err
	}

	merged, err := dedup.Merge(group.Duplicates, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("merge group %q: %w", group.Key, err)
	}

	removeIDs := make([]string, 0, len(group.Duplicates)-1)
	for _, rec := range group.Duplicates {
		if rec.ID != base.ID {
			removeIDs = append(removeIDs, rec.ID)
		}
	}

	if err := s.records.ReplaceGroup(ctx, base.ID, merged, removeIDs); err != nil {
		return nil, fmt.Errorf("replace group %q: %w", group.Key, err)
	}

	s.log.Info("duplicate group merged",
		slog.String("key", group.Key),
		slog.String("type", string(group.Type)),
		slog.Int("records", len(group.Duplicates)),
		slog.String("kept_id", base.ID),
	)

	return &MergeOutcome{
		Merged:     merged,
		KeptID:     base.ID,
		RemovedIDs: removeIDs,
	}, nil
}
