package services

import (
	"fmt"
	"sort"
	"strings"

	"auction-normalizer/storage"
	"auction-normalizer/utils"
)

// Report summarizes one normalization run.
type Report struct {
	FilesParsed   int
	Items         int
	Users         int
	Bids          int
	CategoryPairs int
	TopCategories []CategoryCount
}

// CategoryCount pairs a category's quoted name with its member-item count.
type CategoryCount struct {
	Category string
	Items    int
}

// ReportService computes and prints the post-run summary.
type ReportService struct {
	logger *utils.Logger
}

// NewReportService creates a ReportService with the given logger.
func NewReportService(logger *utils.Logger) *ReportService {
	return &ReportService{logger: logger}
}

// Generate computes the run summary from the accumulated relations. It
// reads the accumulator only; nothing emitted is altered.
func (s *ReportService) Generate(acc *storage.Accumulator, filesParsed int) *Report {
	pairs := acc.CategoryPairs()

	perCategory := make(map[string]int)
	var order []string
	for _, p := range pairs {
		if _, ok := perCategory[p.Category]; !ok {
			order = append(order, p.Category)
		}
		perCategory[p.Category]++
	}

	counts := make([]CategoryCount, 0, len(order))
	for _, c := range order {
		counts = append(counts, CategoryCount{Category: c, Items: perCategory[c]})
	}
	// Stable sort keeps registration order among equal-sized categories.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Items > counts[j].Items
	})
	if len(counts) > 5 {
		counts = counts[:5]
	}

	return &Report{
		FilesParsed:   filesParsed,
		Items:         len(acc.Items()),
		Users:         len(acc.Users()),
		Bids:          len(acc.Bids()),
		CategoryPairs: len(pairs),
		TopCategories: counts,
	}
}

// Print writes a human-readable summary to stdout.
func (s *ReportService) Print(r *Report) {
	thin := strings.Repeat("─", 44)

	fmt.Printf("\n  Run summary\n  %s\n", thin)
	fmt.Printf("  Files parsed   : %d\n", r.FilesParsed)
	fmt.Printf("  Items          : %d\n", r.Items)
	fmt.Printf("  Users          : %d\n", r.Users)
	fmt.Printf("  Bids           : %d\n", r.Bids)
	fmt.Printf("  Category pairs : %d\n", r.CategoryPairs)

	if len(r.TopCategories) > 0 {
		fmt.Printf("\n  Largest categories\n  %s\n", thin)
		for _, c := range r.TopCategories {
			fmt.Printf("  %-32s %d items\n", c.Category, c.Items)
		}
	}
	fmt.Println()
}
