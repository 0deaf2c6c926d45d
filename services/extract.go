package services

import (
	"encoding/json"
	"fmt"
	"os"

	"auction-normalizer/models"
	"auction-normalizer/storage"
	"auction-normalizer/utils"
)

// Extractor walks parsed auction documents and feeds normalized rows into
// the shared accumulator. It is not safe for concurrent use: registration
// order is what makes first-seen-wins deduplication reproducible, so all
// extraction runs on a single goroutine.
type Extractor struct {
	acc    *storage.Accumulator
	logger *utils.Logger
}

// NewExtractor creates an Extractor feeding acc.
func NewExtractor(acc *storage.Accumulator, logger *utils.Logger) *Extractor {
	return &Extractor{acc: acc, logger: logger}
}

// ParseFile reads and unmarshals one {"Items": [...]} document. Safe to
// call from multiple goroutines on distinct files.
func ParseFile(path string) (*models.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("extract: read %s: %w", path, err)
	}
	doc := &models.Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("extract: parse %s: %w", path, err)
	}
	return doc, nil
}

// Extract registers every item, seller, bidder, bid and category
// membership found in doc. file is used only for error reporting. The
// first missing required field or malformed timestamp aborts the run.
func (e *Extractor) Extract(doc *models.Document, file string) error {
	for i := range doc.Items {
		if err := e.extractItem(&doc.Items[i], file); err != nil {
			return err
		}
	}
	e.logger.Debug("[extract] %s: walked %d items", file, len(doc.Items))
	return nil
}

func (e *Extractor) extractItem(item *models.Item, file string) error {
	if item.ItemID == nil {
		return &MissingFieldError{File: file, Field: "ItemID"}
	}
	if item.Seller == nil {
		return &MissingFieldError{File: file, Field: "Seller"}
	}
	if item.Seller.UserID == nil {
		return &MissingFieldError{File: file, Field: "Seller.UserID"}
	}
	itemID := item.ItemID.String()
	sellerID := item.Seller.UserID.String()

	started, err := e.normalizeTime(item.Started, file, "Started")
	if err != nil {
		return err
	}
	ends, err := e.normalizeTime(item.Ends, file, "Ends")
	if err != nil {
		return err
	}

	e.acc.RegisterItem(itemID, models.ItemRow{
		ItemID:       itemID,
		Name:         QuoteEscape(item.Name),
		Currently:    NormalizeCurrency(item.Currently),
		FirstBid:     NormalizeCurrency(item.FirstBid),
		NumberOfBids: item.NumberOfBids.String(),
		Started:      started,
		Ends:         ends,
		Description:  QuoteEscape(item.Description),
		SellerID:     sellerID,
	})

	// Seller location and country live on the item record, not on the
	// seller sub-record.
	e.acc.RegisterUser(sellerID, models.UserRow{
		UserID:   QuoteEscape(item.Seller.UserID),
		Rating:   item.Seller.Rating.String(),
		Location: QuoteEscape(item.Location),
		Country:  QuoteEscape(item.Country),
	})

	for i := range item.Bids {
		if err := e.extractBid(&item.Bids[i], itemID, file); err != nil {
			return err
		}
	}

	for _, cat := range item.Category {
		e.acc.RegisterCategoryMembership(cat.String(), QuoteEscape(cat), itemID)
	}
	return nil
}

func (e *Extractor) extractBid(entry *models.BidEntry, itemID, file string) error {
	if entry.Bid == nil {
		return &MissingFieldError{File: file, Field: "Bid"}
	}
	bid := entry.Bid
	if bid.Bidder == nil {
		return &MissingFieldError{File: file, Field: "Bid.Bidder"}
	}
	if bid.Bidder.UserID == nil {
		return &MissingFieldError{File: file, Field: "Bid.Bidder.UserID"}
	}
	if bid.Amount == nil {
		return &MissingFieldError{File: file, Field: "Bid.Amount"}
	}
	bidTime, err := e.normalizeTime(bid.Time, file, "Bid.Time")
	if err != nil {
		return err
	}

	// A bidder carrying no Location or Country converges on the same
	// "NULL" rendering as an explicit null.
	bidderID := bid.Bidder.UserID.String()
	e.acc.RegisterUser(bidderID, models.UserRow{
		UserID:   QuoteEscape(bid.Bidder.UserID),
		Rating:   bid.Bidder.Rating.String(),
		Location: QuoteEscape(bid.Bidder.Location),
		Country:  QuoteEscape(bid.Bidder.Country),
	})
	e.acc.AppendBid(models.BidRow{
		ItemID: itemID,
		UserID: bidderID,
		Time:   bidTime,
		Amount: NormalizeCurrency(bid.Amount),
	})
	return nil
}

func (e *Extractor) normalizeTime(t *models.Text, file, field string) (string, error) {
	if t == nil {
		return "", &MissingFieldError{File: file, Field: field}
	}
	s, err := NormalizeTimestamp(string(*t))
	if err != nil {
		return "", fmt.Errorf("%s: field %s: %w", file, field, err)
	}
	return s, nil
}
