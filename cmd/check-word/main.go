// Command check-word runs a pre-insert duplicate check for one candidate
// entry against a JSON export of the vocabulary collection.
//
// With only -word it runs the quick headword check (exact or fuzzy). When
// -bangla or -pos is supplied it runs the full-form validation, where a
// matching word with a different part of speech is a warning, not a block.
//
// Exit codes: 0 = no blocking duplicate, 2 = duplicate found, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/shobdo/vocab-dedup/internal/adapter/jsonfile"
	"github.com/shobdo/vocab-dedup/internal/app"
	"github.com/shobdo/vocab-dedup/internal/config"
	"github.com/shobdo/vocab-dedup/internal/dedup"
	"github.com/shobdo/vocab-dedup/internal/service/review"
)

func main() {
	inputFlag := flag.String("input", "", "path to the vocabulary JSON export (required)")
	wordFlag := flag.String("word", "", "English headword to check (required)")
	banglaFlag := flag.String("bangla", "", "Bangla translation (switches to full-form validation)")
	posFlag := flag.String("pos", "", "part of speech (switches to full-form validation)")
	thresholdFlag := flag.Float64("threshold", 0, "similarity threshold override (0 = use config)")
	flag.Parse()

	if *inputFlag == "" || *wordFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *thresholdFlag > 0 {
		cfg.Dedup.Threshold = *thresholdFlag
	}

	logger := app.NewLogger(cfg.Log)

	svc := review.New(logger, cfg.Dedup, jsonfile.New(*inputFlag))
	ctx := context.Background()

	if *banglaFlag == "" && *posFlag == "" {
		result, err := svc.CheckBeforeAdd(ctx, *wordFlag)
		if err != nil {
			logger.Error("check failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		reportWordCheck(*wordFlag, result)
		if result.IsDuplicate {
			os.Exit(2)
		}
		return
	}

	result, err := svc.ValidateCandidate(ctx, dedup.Candidate{
		English:      *wordFlag,
		Bangla:       *banglaFlag,
		PartOfSpeech: *posFlag,
	})
	if err != nil {
		logger.Error("check failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	reportCandidateCheck(result)
	if result.IsDuplicate {
		os.Exit(2)
	}
}

func reportWordCheck(word string, result *dedup.WordCheckResult) {
	switch result.Type {
	case dedup.MatchExact:
		fmt.Printf("%q already exists (%d exact match(es)):\n", word, len(result.Matches))
	case dedup.MatchSimilar:
		fmt.Printf("%q is close to %d existing word(s), best match %.1f%%:\n",
			word, len(result.Matches), result.Similarity)
	default:
		fmt.Printf("%q has no match in the collection.\n", word)
		return
	}
	for _, rec := range result.Matches {
		fmt.Printf("    %s  %s — %s\n", rec.ID, rec.English, rec.Bangla)
	}
}

func reportCandidateCheck(result *dedup.CandidateCheckResult) {
	if len(result.Duplicates) == 0 {
		fmt.Println("No match in the collection.")
		return
	}
	fmt.Println(result.Message)
	for _, rec := range result.Duplicates {
		fmt.Printf("    %s  %s — %s (%s)\n", rec.ID, rec.English, rec.Bangla, rec.PartOfSpeech)
	}
}
