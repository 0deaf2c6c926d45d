package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"auction-normalizer/models"
)

// columnSeparator joins fields within one emitted record.
const columnSeparator = "|"

// Relation file names, fixed by the bulk-load contract.
const (
	ItemsFile      = "items.dat"
	UsersFile      = "users.dat"
	BidsFile       = "bids.dat"
	CategoriesFile = "categories.dat"
)

// DatWriter emits the accumulated relations as pipe-delimited flat files
// under a single output directory. Each file is created fresh (truncating
// any previous run) and written exactly once, after all inputs are consumed.
type DatWriter struct {
	dir string
}

// NewDatWriter returns a DatWriter targeting dir, creating it if needed.
func NewDatWriter(dir string) (*DatWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("dat: create output dir: %w", err)
	}
	return &DatWriter{dir: dir}, nil
}

// WriteItems writes items.dat in first-registration order.
func (w *DatWriter) WriteItems(rows []models.ItemRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.ItemID, r.Name, r.Currently, r.FirstBid, r.NumberOfBids,
			r.Started, r.Ends, r.Description, r.SellerID,
		})
	}
	return w.writeRelation(ItemsFile, records)
}

// WriteUsers writes users.dat in first-registration order.
func (w *DatWriter) WriteUsers(rows []models.UserRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.UserID, r.Rating, r.Location, r.Country})
	}
	return w.writeRelation(UsersFile, records)
}

// WriteBids writes bids.dat in append order.
func (w *DatWriter) WriteBids(rows []models.BidRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.ItemID, r.UserID, r.Time, r.Amount})
	}
	return w.writeRelation(BidsFile, records)
}

// WriteCategories writes categories.dat, one row per (item, category) pair,
// item first.
func (w *DatWriter) WriteCategories(pairs []models.CategoryPair) error {
	records := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		records = append(records, []string{p.ItemID, p.Category})
	}
	return w.writeRelation(CategoriesFile, records)
}

// writeRelation writes one record per line, fields joined by the column
// separator with no trailing delimiter, newline terminated.
func (w *DatWriter) writeRelation(name string, records [][]string) error {
	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dat: create %s: %w", path, err)
	}

	buf := bufio.NewWriter(f)
	for _, rec := range records {
		if _, err := buf.WriteString(strings.Join(rec, columnSeparator) + "\n"); err != nil {
			_ = f.Close()
			return fmt.Errorf("dat: write %s: %w", path, err)
		}
	}
	if err := buf.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("dat: flush %s: %w", path, err)
	}
	return f.Close()
}
