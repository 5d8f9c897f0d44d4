package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shobdo/vocab-dedup/internal/dedup"
)

// CheckBeforeAdd runs the quick pre-insert check for a typed headword
// (dedup.PolicyEnglishOnlyFuzzy) against the current collection.
func (s *Service) CheckBeforeAdd(ctx context.Context, word string) (*dedup.WordCheckResult, error) {
	existing, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	result := dedup.CheckNewWord(word, existing, s.cfg.Threshold)
	if result.IsDuplicate {
		s.log.Info("pre-insert collision",
			slog.String("word", word),
			slog.String("match", string(result.Type)),
			slog.Int("matches", len(result.Matches)),
		)
	}
	return &result, nil
}

// ValidateCandidate runs the full-form pre-insert check
// (dedup.PolicyCrossFieldPartOfSpeech) against the current collection.
func (s *Service) ValidateCandidate(ctx context.Context, candidate dedup.Candidate) (*dedup.CandidateCheckResult, error) {
	existing, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	result := dedup.CheckCandidate(candidate, existing)
	if len(result.Duplicates) > 0 {
		s.log.Info("candidate collision",
			slog.String("english", candidate.English),
			slog.Bool("duplicate", result.IsDuplicate),
			slog.Int("matches", len(result.Duplicates)),
		)
	}
	return &result, nil
}
