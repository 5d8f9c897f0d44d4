package dedup

import (
	"unicode/utf8"

	"github.com/shobdo/vocab-dedup/internal/domain"
)

// CompletenessScore measures how richly a record's optional fields are
// populated. Counted fields carry fixed weights; free text contributes by
// length. Length is a deliberate proxy for descriptiveness, chosen to keep
// the scorer fast and deterministic.
func CompletenessScore(rec domain.VocabularyRecord) float64 {
	score := 3 * float64(len(rec.Examples))
	score += 2 * float64(len(rec.Synonyms))
	score += 2 * float64(len(rec.Antonyms))
	score += float64(utf8.RuneCountInString(rec.Explanation)) / 10
	score += float64(utf8.RuneCountInString(rec.Pronunciation)) / 5
	score += 2 * float64(rec.VerbForms.FilledCount())
	score += 2 * float64(len(rec.RelatedWords))
	return score
}

// MostComplete returns the record with the highest completeness score.
// Ties keep the earlier record (strict > comparison). Returns
// domain.ErrNoRecords for empty input.
func MostComplete(records []domain.VocabularyRecord) (domain.VocabularyRecord, error) {
	if len(records) == 0 {
		return domain.VocabularyRecord{}, domain.ErrNoRecords
	}

	best := records[0]
	bestScore := CompletenessScore(best)
	for _, rec := range records[1:] {
		if score := CompletenessScore(rec); score > bestScore {
			best, bestScore = rec, score
		}
	}
	return best, nil
}
