package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"auction-normalizer/config"
	"auction-normalizer/models"
	"auction-normalizer/services"
	"auction-normalizer/storage"
	"auction-normalizer/utils"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <path to json files>\n", os.Args[0])
		os.Exit(1)
	}

	cfg := config.Load()
	logger := utils.NewLogger(cfg.LogLevel)
	runID := uuid.NewString()

	logger.Info("=== Auction normalizer starting (run %s) ===", runID)
	logger.Info("Config — output dir: %s | concurrency: %d", cfg.OutputDir, cfg.MaxConcurrency)

	// Non-.json arguments are skipped, not errors.
	var files []string
	for _, arg := range os.Args[1:] {
		if services.IsJSONFile(arg) {
			files = append(files, arg)
		} else {
			logger.Debug("Skipping non-json argument: %s", arg)
		}
	}

	docs, err := parseAll(files, cfg.MaxConcurrency)
	if err != nil {
		logger.Error("Parse failed: %v", err)
		os.Exit(1)
	}

	acc := storage.NewAccumulator()
	extractor := services.NewExtractor(acc, logger)
	for i, doc := range docs {
		if err := extractor.Extract(doc, files[i]); err != nil {
			logger.Error("Extraction failed: %v", err)
			os.Exit(1)
		}
		fmt.Println("Success parsing " + files[i])
	}

	writer, err := storage.NewDatWriter(cfg.OutputDir)
	if err != nil {
		logger.Error("Failed to create output writer: %v", err)
		os.Exit(1)
	}
	if err := emit(writer, acc); err != nil {
		logger.Error("Failed to write relations: %v", err)
		os.Exit(1)
	}
	logger.Info("Relations written to %s", cfg.OutputDir)

	reportSvc := services.NewReportService(logger)
	reportSvc.Print(reportSvc.Generate(acc, len(files)))
}

// parseAll unmarshals the input files concurrently, bounded by maxWorkers.
// Results keep input-argument order: extraction then runs strictly in that
// order on one goroutine, so first-seen-wins deduplication stays
// deterministic.
func parseAll(files []string, maxWorkers int) ([]*models.Document, error) {
	docs := make([]*models.Document, len(files))
	errs := make([]error, len(files))

	pool := utils.NewWorkerPool(maxWorkers)
	for i, path := range files {
		i, path := i, path
		pool.Submit(func() {
			docs[i], errs[i] = services.ParseFile(path)
		})
	}
	pool.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return docs, nil
}

// emit writes all four relations through the staging backend.
func emit(w storage.RelationWriter, acc *storage.Accumulator) error {
	if err := w.WriteItems(acc.Items()); err != nil {
		return err
	}
	if err := w.WriteUsers(acc.Users()); err != nil {
		return err
	}
	if err := w.WriteBids(acc.Bids()); err != nil {
		return err
	}
	return w.WriteCategories(acc.CategoryPairs())
}
