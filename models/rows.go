package models

// ItemRow is one normalized items.dat record. Fields hold post-transform
// text, stored exactly as they will be emitted.
type ItemRow struct {
	ItemID       string
	Name         string // quoted
	Currently    string
	FirstBid     string
	NumberOfBids string
	Started      string
	Ends         string
	Description  string // quoted
	SellerID     string
}

// UserRow is one normalized users.dat record. Populated from both seller
// and bidder sub-records; whichever registers a UserID first wins.
type UserRow struct {
	UserID   string // quoted
	Rating   string
	Location string // quoted
	Country  string // quoted
}

// BidRow is one bids.dat record. Bids carry no identity of their own;
// duplicates in the source produce duplicate rows.
type BidRow struct {
	ItemID string
	UserID string
	Time   string
	Amount string
}

// CategoryPair is one emitted (item, category) membership.
type CategoryPair struct {
	ItemID   string
	Category string // quoted
}
