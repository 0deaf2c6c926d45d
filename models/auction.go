package models

import "encoding/json"

// Text is a JSON scalar kept in its source textual form. The auction dumps
// are inconsistent about types — ItemID may arrive as a string or a number,
// ratings and bid counts likewise — so values are held verbatim instead of
// being forced into string/int/float.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(data)
	return nil
}

// String returns the verbatim text, or "" for a nil (missing or null) value.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return string(*t)
}

// Document is the top-level shape of one input file.
type Document struct {
	Items []Item `json:"Items"`
}

// Item is one denormalized auction listing, embedding its seller, bids and
// category memberships. Every scalar is optional at the JSON level; the
// extractor decides which absences are fatal.
type Item struct {
	ItemID       *Text      `json:"ItemID"`
	Name         *Text      `json:"Name"`
	Currently    *Text      `json:"Currently"`
	FirstBid     *Text      `json:"First_Bid"`
	NumberOfBids *Text      `json:"Number_of_Bids"`
	Started      *Text      `json:"Started"`
	Ends         *Text      `json:"Ends"`
	Description  *Text      `json:"Description"`
	Location     *Text      `json:"Location"`
	Country      *Text      `json:"Country"`
	Seller       *Seller    `json:"Seller"`
	Bids         []BidEntry `json:"Bids"`
	Category     []*Text    `json:"Category"`
}

// Seller is the item-embedded seller sub-record. Its location and country
// live on the enclosing item, not here.
type Seller struct {
	UserID *Text `json:"UserID"`
	Rating *Text `json:"Rating"`
}

// BidEntry mirrors the source's one-key {"Bid": {...}} wrapper objects.
type BidEntry struct {
	Bid *Bid `json:"Bid"`
}

// Bid is one bid occurrence nested inside an item's Bids list.
type Bid struct {
	Bidder *Bidder `json:"Bidder"`
	Time   *Text   `json:"Time"`
	Amount *Text   `json:"Amount"`
}

// Bidder may omit Location and Country entirely; both render the same as an
// explicit null.
type Bidder struct {
	UserID   *Text `json:"UserID"`
	Rating   *Text `json:"Rating"`
	Location *Text `json:"Location"`
	Country  *Text `json:"Country"`
}
