// Command dedup-report scans a JSON export of the vocabulary collection and
// prints the exact and near-duplicate groups found. It never modifies the
// snapshot; merging is a separate, human-approved step.
//
// Exit codes: 0 = success (even when duplicates exist), 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/shobdo/vocab-dedup/internal/adapter/jsonfile"
	"github.com/shobdo/vocab-dedup/internal/app"
	"github.com/shobdo/vocab-dedup/internal/config"
	"github.com/shobdo/vocab-dedup/internal/dedup"
	"github.com/shobdo/vocab-dedup/internal/domain"
	"github.com/shobdo/vocab-dedup/internal/service/review"
)

func main() {
	inputFlag := flag.String("input", "", "path to the vocabulary JSON export (required)")
	thresholdFlag := flag.Float64("threshold", 0, "similarity threshold override (0 = use config)")
	jsonFlag := flag.Bool("json", false, "emit the report as JSON")
	flag.Parse()

	if *inputFlag == "" {
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
	logger.Debug("starting dedup-report", slog.String("version", app.BuildVersion()))

	svc := review.New(logger, cfg.Dedup, jsonfile.New(*inputFlag))

	report, err := svc.DetectDuplicates(context.Background())
	if err != nil {
		logger.Error("detection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			logger.Error("encode report", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	printReport(report)
}

func printReport(report *dedup.Report) {
	if report.Total == 0 {
		fmt.Println("No duplicate groups found.")
		return
	}

	fmt.Printf("%d duplicate group(s): %d exact, %d similar\n\n",
		report.Total, len(report.Exact), len(report.Similar))

	for _, group := range report.Exact {
		fmt.Printf("[exact] %q (%d records)\n", group.Key, len(group.Duplicates))
		printMembers(group)
	}
	for _, group := range report.Similar {
		fmt.Printf("[similar] %q (%d records, best match %.1f%%)\n",
			group.Key, len(group.Duplicates), group.Similarity)
		printMembers(group)
	}
}

func printMembers(group domain.DuplicateGroup) {
	for _, rec := range group.Duplicates {
		fmt.Printf("    %s  %s — %s (%s)\n", rec.ID, rec.English, rec.Bangla, rec.PartOfSpeech)
	}
	fmt.Println()
}
