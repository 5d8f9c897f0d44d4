package dedup

import (
	"sort"
	"strings"

	"github.com/shobdo/vocab-dedup/internal/domain"
)

// Policy names a pre-insert duplicate-check strategy. The two policies encode
// different UI flows: a quick check on the typed headword alone, and a
// full-form validation that also considers the translation and part of
// speech.
type Policy string

const (
	// PolicyEnglishOnlyFuzzy matches on the normalized English headword,
	// exactly or within the similarity window (CheckNewWord).
	PolicyEnglishOnlyFuzzy Policy = "english_only_fuzzy"
	// PolicyCrossFieldPartOfSpeech matches on normalized English or Bangla
	// and only confirms a duplicate when the part of speech agrees
	// (CheckCandidate).
	PolicyCrossFieldPartOfSpeech Policy = "cross_field_part_of_speech"
)

// MatchType classifies a CheckNewWord verdict.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchSimilar MatchType = "similar"
	MatchNone    MatchType = "none"
)

// WordCheckResult is the verdict of CheckNewWord. Similarity is the highest
// similarity found, set only for similar matches.
type WordCheckResult struct {
	IsDuplicate bool                      `json:"isDuplicate"`
	Type        MatchType                 `json:"type"`
	Matches     []domain.VocabularyRecord `json:"matches,omitempty"`
	Similarity  float64                   `json:"similarity,omitempty"`
}

// CheckNewWord reports whether newWord collides with the existing collection
// before insertion. Exact matches on the normalized headword win; otherwise
// records within [threshold, 100) similarity are returned sorted by
// similarity descending. Read-only; blocking or warning is the caller's call.
func CheckNewWord(newWord string, existing []domain.VocabularyRecord, threshold float64) WordCheckResult {
	normalized := domain.NormalizeText(newWord)

	var exact []domain.VocabularyRecord
	for _, rec := range existing {
		if domain.NormalizeText(rec.English) == normalized {
			exact = append(exact, rec)
		}
	}
	if len(exact) > 0 {
		return WordCheckResult{IsDuplicate: true, Type: MatchExact, Matches: exact}
	}

	type scored struct {
		rec domain.VocabularyRecord
		sim float64
	}
	var near []scored
	for _, rec := range existing {
		sim := Similarity(normalized, domain.NormalizeText(rec.English))
		if sim >= threshold && sim < 100 {
			near = append(near, scored{rec: rec, sim: sim})
		}
	}
	if len(near) == 0 {
		return WordCheckResult{Type: MatchNone}
	}

	sort.SliceStable(near, func(i, j int) bool { return near[i].sim > near[j].sim })
	matches := make([]domain.VocabularyRecord, len(near))
	for i, s := range near {
		matches[i] = s.rec
	}
	return WordCheckResult{
		IsDuplicate: true,
		Type:        MatchSimilar,
		Matches:     matches,
		Similarity:  near[0].sim,
	}
}

// Candidate is a vocabulary entry about to be inserted, as filled in by the
// full entry form. Any field may be empty.
type Candidate struct {
	English      string `json:"english,omitempty"`
	Bangla       string `json:"bangla,omitempty"`
	PartOfSpeech string `json:"partOfSpeech,omitempty"`
}

// CandidateCheckResult is the verdict of CheckCandidate. Word-only matches
// (same spelling, different part of speech) are reported with
// IsDuplicate=false as a soft warning rather than a block.
type CandidateCheckResult struct {
	IsDuplicate bool                      `json:"isDuplicate"`
	Duplicates  []domain.VocabularyRecord `json:"duplicates,omitempty"`
	Message     string                    `json:"message,omitempty"`
}

// CheckCandidate looks for existing records matching the candidate on
// normalized English OR normalized Bangla; matching the translation alone is
// enough to surface a record. Among those, only a matching part of speech
// (case-insensitive, trimmed) makes it an exact duplicate. Homonyms with a
// different grammatical role come back as a warning, not a duplicate.
func CheckCandidate(candidate Candidate, existing []domain.VocabularyRecord) CandidateCheckResult {
	english := domain.NormalizeText(candidate.English)
	bangla := domain.NormalizeText(candidate.Bangla)

	var wordMatches []domain.VocabularyRecord
	for _, rec := range existing {
		if (english != "" && domain.NormalizeText(rec.English) == english) ||
			(bangla != "" && domain.NormalizeText(rec.Bangla) == bangla) {
			wordMatches = append(wordMatches, rec)
		}
	}
	if len(wordMatches) == 0 {
		return CandidateCheckResult{}
	}

	var exact []domain.VocabularyRecord
	for _, rec := range wordMatches {
		if samePartOfSpeech(candidate.PartOfSpeech, rec.PartOfSpeech) {
			exact = append(exact, rec)
		}
	}
	if len(exact) > 0 {
		return CandidateCheckResult{
			IsDuplicate: true,
			Duplicates:  exact,
			Message:     "an entry with the same word and part of speech already exists",
		}
	}
	return CandidateCheckResult{
		Duplicates: wordMatches,
		Message:    "the word already exists with a different part of speech",
	}
}

func samePartOfSpeech(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
