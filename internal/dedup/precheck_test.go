package dedup

import (
	"testing"

	"github.com/shobdo/vocab-dedup/internal/domain"
)

func existing(words ...string) []domain.VocabularyRecord {
	records := make([]domain.VocabularyRecord, len(words))
	for i, w := range words {
		records[i] = domain.VocabularyRecord{ID: w, English: w}
	}
	return records
}

func TestCheckNewWord_Exact(t *testing.T) {
	t.Parallel()

	result := CheckNewWord("Receive", existing("receive"), DefaultThreshold)

	if !result.IsDuplicate || result.Type != MatchExact {
		t.Fatalf("got %+v, want exact duplicate", result)
	}
	if len(result.Matches) != 1 || result.Matches[0].English != "receive" {
		t.Errorf("matches = %v, want the existing record", result.Matches)
	}
}

func TestCheckNewWord_Similar(t *testing.T) {
	t.Parallel()

	// "grammer" vs "Grammar": distance 1 over 7 runes, 85.7% similarity.
	result := CheckNewWord("grammer", existing("Grammar"), DefaultThreshold)

	if !result.IsDuplicate || result.Type != MatchSimilar {
		t.Fatalf("got %+v, want similar duplicate", result)
	}
	if len(result.Matches) != 1 || result.Matches[0].English != "Grammar" {
		t.Errorf("matches = %v, want the existing record", result.Matches)
	}
	if result.Similarity <= 85 || result.Similarity >= 100 {
		t.Errorf("similarity = %v, want in (85, 100)", result.Similarity)
	}
}

func TestCheckNewWord_SimilarSortedBySimilarity(t *testing.T) {
	t.Parallel()

	records := existing(
		"aaaaaaaaaaaaaaaaabbb", // distance 3 from the probe: 85%
		"aaaaaaaaaaaaaaaaaabb", // distance 2: 90%
		"aaaaaaaaaaaaaaaaaaab", // distance 1: 95%
	)

	result := CheckNewWord("aaaaaaaaaaaaaaaaaaaa", records, 85)
	if result.Type != MatchSimilar {
		t.Fatalf("got %+v, want similar", result)
	}
	if len(result.Matches) != 3 {
		t.Fatalf("matches = %d, want 3", len(result.Matches))
	}
	if result.Matches[0].English != "aaaaaaaaaaaaaaaaaaab" {
		t.Errorf("best match first, got %q", result.Matches[0].English)
	}
	if result.Similarity != 95 {
		t.Errorf("similarity = %v, want 95 (highest found)", result.Similarity)
	}
}

func TestCheckNewWord_None(t *testing.T) {
	t.Parallel()

	result := CheckNewWord("zeppelin", existing("receive", "walk"), DefaultThreshold)

	if result.IsDuplicate || result.Type != MatchNone {
		t.Fatalf("got %+v, want no match", result)
	}
	if len(result.Matches) != 0 {
		t.Errorf("matches = %v, want none", result.Matches)
	}
}

func TestCheckCandidate_ExactRequiresPartOfSpeech(t *testing.T) {
	t.Parallel()

	records := []domain.VocabularyRecord{
		{ID: "1", English: "run", Bangla: "দৌড়", PartOfSpeech: "Verb"},
	}

	result := CheckCandidate(Candidate{English: "Run", PartOfSpeech: " verb "}, records)
	if !result.IsDuplicate {
		t.Fatalf("got %+v, want duplicate (same word, same part of speech)", result)
	}
	if len(result.Duplicates) != 1 {
		t.Errorf("duplicates = %d, want 1", len(result.Duplicates))
	}
}

func TestCheckCandidate_HomonymIsSoftWarning(t *testing.T) {
	t.Parallel()

	records := []domain.VocabularyRecord{
		{ID: "1", English: "run", PartOfSpeech: "Noun"},
	}

	result := CheckCandidate(Candidate{English: "run", PartOfSpeech: "Verb"}, records)
	if result.IsDuplicate {
		t.Fatalf("got %+v, homonyms must not block", result)
	}
	if len(result.Duplicates) != 1 {
		t.Errorf("duplicates = %d, want 1 (still surfaced)", len(result.Duplicates))
	}
	if result.Message == "" {
		t.Error("want a descriptive message for the warning")
	}
}

func TestCheckCandidate_BanglaAloneMatches(t *testing.T) {
	t.Parallel()

	records := []domain.VocabularyRecord{
		{ID: "1", English: "run", Bangla: "দৌড়", PartOfSpeech: "Verb"},
	}

	// English differs entirely; the shared translation still surfaces it.
	result := CheckCandidate(Candidate{English: "sprint", Bangla: "দৌড়", PartOfSpeech: "Verb"}, records)
	if !result.IsDuplicate {
		t.Fatalf("got %+v, want duplicate via translation match", result)
	}
	if len(result.Duplicates) != 1 {
		t.Errorf("duplicates = %d, want 1", len(result.Duplicates))
	}
}

func TestCheckCandidate_NoMatch(t *testing.T) {
	t.Parallel()

	records := []domain.VocabularyRecord{
		{ID: "1", English: "run", Bangla: "দৌড়", PartOfSpeech: "Verb"},
	}

	result := CheckCandidate(Candidate{English: "walk", Bangla: "হাঁটা"}, records)
	if result.IsDuplicate || len(result.Duplicates) != 0 || result.Message != "" {
		t.Errorf("got %+v, want empty verdict", result)
	}
}

func TestCheckCandidate_EmptyFieldsNeverMatch(t *testing.T) {
	t.Parallel()

	// An empty candidate must not match records with empty Bangla.
	records := []domain.VocabularyRecord{
		{ID: "1", English: "run"},
	}

	result := CheckCandidate(Candidate{}, records)
	if result.IsDuplicate || len(result.Duplicates) != 0 {
		t.Errorf("got %+v, want no match for an empty candidate", result)
	}
}
