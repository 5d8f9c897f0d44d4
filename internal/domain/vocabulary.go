package domain

import (
	"time"
)

// VocabularyRecord is a single vocabulary entry as exported by the calling
// application's store. The engine only reads it; the ID stays opaque.
type VocabularyRecord struct {
	ID            string        `json:"id"`
	English       string        `json:"english"`
	Bangla        string        `json:"bangla"`
	PartOfSpeech  string        `json:"partOfSpeech,omitempty"`
	Examples      []ExamplePair `json:"examples,omitempty"`
	Synonyms      []string      `json:"synonyms,omitempty"`
	Antonyms      []string      `json:"antonyms,omitempty"`
	RelatedWords  []RelatedWord `json:"relatedWords,omitempty"`
	Explanation   string        `json:"explanation,omitempty"`
	Pronunciation string        `json:"pronunciation,omitempty"`
	VerbForms     *VerbForms    `json:"verbForms,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// ExamplePair is one example sentence with its translation.
type ExamplePair struct {
	En string `json:"en"`
	Bn string `json:"bn"`
}

// RelatedWord links a record to a nearby word. Uniqueness is decided by the
// normalized Word, not by the translation.
type RelatedWord struct {
	Word   string `json:"word"`
	Bangla string `json:"bangla,omitempty"`
}

// VerbForms holds the conjugation slots of a verb entry.
type VerbForms struct {
	Base              string `json:"base,omitempty"`
	Past              string `json:"past,omitempty"`
	PastParticiple    string `json:"pastParticiple,omitempty"`
	PresentParticiple string `json:"presentParticiple,omitempty"`
	ThirdPerson       string `json:"thirdPerson,omitempty"`
}

// FilledCount returns the number of non-empty conjugation slots.
func (v *VerbForms) FilledCount() int {
	if v == nil {
		return 0
	}
	count := 0
	for _, slot := range [...]string{v.Base, v.Past, v.PastParticiple, v.PresentParticiple, v.ThirdPerson} {
		if slot != "" {
			count++
		}
	}
	return count
}

// MergedVocabulary is the result of collapsing a duplicate group. It carries
// every field of VocabularyRecord except the ID: the caller decides which
// original ID (if any) the merged record keeps.
type MergedVocabulary struct {
	English       string        `json:"english"`
	Bangla        string        `json:"bangla"`
	PartOfSpeech  string        `json:"partOfSpeech,omitempty"`
	Examples      []ExamplePair `json:"examples,omitempty"`
	Synonyms      []string      `json:"synonyms,omitempty"`
	Antonyms      []string      `json:"antonyms,omitempty"`
	RelatedWords  []RelatedWord `json:"relatedWords,omitempty"`
	Explanation   string        `json:"explanation,omitempty"`
	Pronunciation string        `json:"pronunciation,omitempty"`
	VerbForms     *VerbForms    `json:"verbForms,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// GroupType tags how a duplicate group was detected.
type GroupType string

const (
	GroupExact   GroupType = "exact"
	GroupSimilar GroupType = "similar"
)

// DuplicateGroup is a set of records judged to refer to the same word.
// Invariant: len(Duplicates) >= 2, members sorted newest-first.
// Similarity is the highest pair similarity seen while building a similar
// group; it is zero for exact groups.
type DuplicateGroup struct {
	Key        string             `json:"key"`
	Type       GroupType          `json:"type"`
	Duplicates []VocabularyRecord `json:"duplicates"`
	Similarity float64            `json:"similarity,omitempty"`
}
