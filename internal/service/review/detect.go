package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shobdo/vocab-dedup/internal/dedup"
)

// DetectDuplicates loads the full collection and returns the duplicate
// report for the configured threshold. The report is transient: any mutation
// of the collection invalidates it and detection must be re-run.
func (s *Service) DetectDuplicates(ctx context.Context) (*dedup.Report, error) {
	records, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	report := dedup.FindAllDuplicates(records, s.cfg.Threshold)

	s.log.Info("duplicate detection completed",
		slog.Int("records", len(records)),
		slog.Int("exact_groups", len(report.Exact)),
		slog.Int("similar_groups", len(report.Similar)),
		slog.Float64("threshold", s.cfg.Threshold),
	)
	return &report, nil
}
