package storage

import "auction-normalizer/models"

// Accumulator holds the four entity collections for one full run. State
// spans all input files: deduplication is global across the batch and is
// never reset between files. Registration must happen from a single
// goroutine — insertion order is part of the output contract, so Go's
// unordered map iteration is replaced with explicit key slices.
type Accumulator struct {
	itemOrder []string
	items     map[string]models.ItemRow

	userOrder []string
	users     map[string]models.UserRow

	bids []models.BidRow

	categoryOrder []string
	categories    map[string]*categorySet
}

// categorySet tracks one category's member items with set semantics while
// preserving the order members were added.
type categorySet struct {
	quoted  string
	itemIDs []string
	seen    map[string]struct{}
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		items:      make(map[string]models.ItemRow),
		users:      make(map[string]models.UserRow),
		categories: make(map[string]*categorySet),
	}
}

// RegisterItem stores row under id on first sight. Re-occurrences of an id
// across files are ignored, never merged: the first version wins.
func (a *Accumulator) RegisterItem(id string, row models.ItemRow) {
	if _, ok := a.items[id]; ok {
		return
	}
	a.items[id] = row
	a.itemOrder = append(a.itemOrder, id)
}

// RegisterUser stores row under id on first sight. Sellers and bidders feed
// the same collection under the same contract: first writer wins regardless
// of provenance, and a user row is never updated after creation.
func (a *Accumulator) RegisterUser(id string, row models.UserRow) {
	if _, ok := a.users[id]; ok {
		return
	}
	a.users[id] = row
	a.userOrder = append(a.userOrder, id)
}

// AppendBid appends unconditionally. Bids have no identity; duplicates in
// the source produce duplicate output rows.
func (a *Accumulator) AppendBid(row models.BidRow) {
	a.bids = append(a.bids, row)
}

// RegisterCategoryMembership adds itemID to the named category, creating
// the category on first sight. A (category, item) pair is recorded at most
// once. quoted is the emission-ready rendering of the category name.
func (a *Accumulator) RegisterCategoryMembership(name, quoted, itemID string) {
	set, ok := a.categories[name]
	if !ok {
		set = &categorySet{quoted: quoted, seen: make(map[string]struct{})}
		a.categories[name] = set
		a.categoryOrder = append(a.categoryOrder, name)
	}
	if _, dup := set.seen[itemID]; dup {
		return
	}
	set.seen[itemID] = struct{}{}
	set.itemIDs = append(set.itemIDs, itemID)
}

// Items returns the accumulated item rows in first-registration order.
func (a *Accumulator) Items() []models.ItemRow {
	rows := make([]models.ItemRow, 0, len(a.itemOrder))
	for _, id := range a.itemOrder {
		rows = append(rows, a.items[id])
	}
	return rows
}

// Users returns the accumulated user rows in first-registration order.
func (a *Accumulator) Users() []models.UserRow {
	rows := make([]models.UserRow, 0, len(a.userOrder))
	for _, id := range a.userOrder {
		rows = append(rows, a.users[id])
	}
	return rows
}

// Bids returns all accumulated bids in append order.
func (a *Accumulator) Bids() []models.BidRow {
	return a.bids
}

// CategoryPairs flattens the category sets into one row per (item,
// category) pair: categories in registration order, items within each
// category in the order they were added.
func (a *Accumulator) CategoryPairs() []models.CategoryPair {
	var pairs []models.CategoryPair
	for _, name := range a.categoryOrder {
		set := a.categories[name]
		for _, itemID := range set.itemIDs {
			pairs = append(pairs, models.CategoryPair{ItemID: itemID, Category: set.quoted})
		}
	}
	return pairs
}
