package dedup

import (
	"sort"

	"github.com/shobdo/vocab-dedup/internal/domain"
)

// Report is the combined outcome of a detection pass. Total counts groups,
// not members.
type Report struct {
	Exact   []domain.DuplicateGroup `json:"exact"`
	Similar []domain.DuplicateGroup `json:"similar"`
	Total   int                     `json:"total"`
}

// FindExactDuplicates partitions records by normalized English headword and
// returns one group per bucket with at least two members. Groups appear in
// first-seen key order; members are sorted newest-first for presentation.
func FindExactDuplicates(records []domain.VocabularyRecord) []domain.DuplicateGroup {
	buckets := make(map[string][]domain.VocabularyRecord)
	var keys []string

	for _, rec := range records {
		key := domain.NormalizeText(rec.English)
		if _, seen := buckets[key]; !seen {
			keys = append(keys, key)
		}
		buckets[key] = append(buckets[key], rec)
	}

	var groups []domain.DuplicateGroup
	for _, key := range keys {
		members := buckets[key]
		if len(members) < 2 {
			continue
		}
		sortNewestFirst(members)
		groups = append(groups, domain.DuplicateGroup{
			Key:        key,
			Type:       domain.GroupExact,
			Duplicates: members,
		})
	}
	return groups
}

// FindSimilarDuplicates scans records left to right and greedily collects,
// for each unprocessed seed, every later unprocessed record whose normalized
// English similarity falls in [threshold, 100). Exact matches (100) belong to
// exact groups and are skipped here.
//
// The clustering is order-dependent and non-transitive: members are grouped
// by similarity to the seed, not pairwise, and a record joins at most one
// group per pass. This mirrors how the review UI walks the collection and
// must not be replaced with a transitive-closure partition.
func FindSimilarDuplicates(records []domain.VocabularyRecord, threshold float64) []domain.DuplicateGroup {
	processed := make([]bool, len(records))

	var groups []domain.DuplicateGroup
	for i := range records {
		if processed[i] {
			continue
		}
		seed := domain.NormalizeText(records[i].English)
		members := []domain.VocabularyRecord{records[i]}
		highest := 0.0

		for j := i + 1; j < len(records); j++ {
			if processed[j] {
				continue
			}
			sim := Similarity(seed, domain.NormalizeText(records[j].English))
			if sim >= threshold && sim < 100 {
				members = append(members, records[j])
				processed[j] = true
				if sim > highest {
					highest = sim
				}
			}
		}

		if len(members) < 2 {
			continue
		}
		processed[i] = true
		sortNewestFirst(members)
		groups = append(groups, domain.DuplicateGroup{
			Key:        seed,
			Type:       domain.GroupSimilar,
			Duplicates: members,
			Similarity: highest,
		})
	}
	return groups
}

// FindAllDuplicates runs both detections and reports the union.
func FindAllDuplicates(records []domain.VocabularyRecord, threshold float64) Report {
	exact := FindExactDuplicates(records)
	similar := FindSimilarDuplicates(records, threshold)
	return Report{
		Exact:   exact,
		Similar: similar,
		Total:   len(exact) + len(similar),
	}
}

// sortNewestFirst orders group members by CreatedAt descending, keeping the
// original order for equal timestamps.
func sortNewestFirst(members []domain.VocabularyRecord) {
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].CreatedAt.After(members[j].CreatedAt)
	})
}
