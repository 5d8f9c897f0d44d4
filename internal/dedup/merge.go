package dedup

import (
	"time"
	"unicode/utf8"

	"github.com/shobdo/vocab-dedup/internal/domain"
)

// Merge collapses a duplicate group into one canonical record without losing
// unique sub-data. The most complete record supplies every field that is not
// explicitly union-merged below; UpdatedAt is set to now. The result carries
// no ID: the caller decides which original ID the merged record keeps.
//
// A single-record input is returned as-is (minus ID). Empty input returns
// domain.ErrNoRecords.
func Merge(records []domain.VocabularyRecord, now time.Time) (domain.MergedVocabulary, error) {
	base, err := MostComplete(records)
	if err != nil {
		return domain.MergedVocabulary{}, err
	}

	if len(records) == 1 {
		return withoutID(base), nil
	}

	merged := withoutID(base)
	merged.Examples = mergeExamples(records)
	merged.Synonyms = mergeTerms(records, func(r domain.VocabularyRecord) []string { return r.Synonyms })
	merged.Antonyms = mergeTerms(records, func(r domain.VocabularyRecord) []string { return r.Antonyms })
	merged.Explanation = longestText(records, base.Explanation, func(r domain.VocabularyRecord) string { return r.Explanation })
	merged.Pronunciation = longestText(records, base.Pronunciation, func(r domain.VocabularyRecord) string { return r.Pronunciation })
	merged.VerbForms = richestVerbForms(records, base.VerbForms)
	merged.RelatedWords = mergeRelatedWords(records)
	merged.UpdatedAt = now
	return merged, nil
}

func withoutID(rec domain.VocabularyRecord) domain.MergedVocabulary {
	return domain.MergedVocabulary{
		English:       rec.English,
		Bangla:        rec.Bangla,
		PartOfSpeech:  rec.PartOfSpeech,
		Examples:      rec.Examples,
		Synonyms:      rec.Synonyms,
		Antonyms:      rec.Antonyms,
		RelatedWords:  rec.RelatedWords,
		Explanation:   rec.Explanation,
		Pronunciation: rec.Pronunciation,
		VerbForms:     rec.VerbForms,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

// mergeExamples concatenates all example lists, deduplicated by the exact
// (En, Bn) pair, preserving first-seen order.
func mergeExamples(records []domain.VocabularyRecord) []domain.ExamplePair {
	seen := make(map[domain.ExamplePair]struct{})
	var out []domain.ExamplePair
	for _, rec := range records {
		for _, ex := range rec.Examples {
			if _, dup := seen[ex]; dup {
				continue
			}
			seen[ex] = struct{}{}
			out = append(out, ex)
		}
	}
	return out
}

// mergeTerms concatenates string lists, deduplicated by normalized value.
// The first original-cased occurrence per normalized key wins.
func mergeTerms(records []domain.VocabularyRecord, pick func(domain.VocabularyRecord) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range records {
		for _, term := range pick(rec) {
			key := domain.NormalizeText(term)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, term)
		}
	}
	return out
}

// longestText returns the longest non-empty value across records, falling
// back to the base record's value when all are empty. Earlier records win
// length ties.
func longestText(records []domain.VocabularyRecord, fallback string, pick func(domain.VocabularyRecord) string) string {
	longest := ""
	for _, rec := range records {
		if text := pick(rec); utf8.RuneCountInString(text) > utf8.RuneCountInString(longest) {
			longest = text
		}
	}
	if longest == "" {
		return fallback
	}
	return longest
}

// richestVerbForms picks the verb-form set with the most filled slots among
// records that have one, earlier records winning ties. Falls back to the
// base record's forms when none are present.
func richestVerbForms(records []domain.VocabularyRecord, fallback *domain.VerbForms) *domain.VerbForms {
	var best *domain.VerbForms
	bestCount := 0
	for _, rec := range records {
		if rec.VerbForms == nil {
			continue
		}
		if count := rec.VerbForms.FilledCount(); best == nil || count > bestCount {
			best, bestCount = rec.VerbForms, count
		}
	}
	if best == nil {
		return fallback
	}
	return best
}

// mergeRelatedWords concatenates related-word lists, deduplicated by
// normalized word, first-seen representative kept. Returns nil when empty so
// the field is omitted from the merged record.
func mergeRelatedWords(records []domain.VocabularyRecord) []domain.RelatedWord {
	seen := make(map[string]struct{})
	var out []domain.RelatedWord
	for _, rec := range records {
		for _, rw := range rec.RelatedWords {
			key := domain.NormalizeText(rw.Word)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, rw)
		}
	}
	return out
}
