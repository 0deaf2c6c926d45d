package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextKeepsSourceForm(t *testing.T) {
	var item Item
	require.NoError(t, json.Unmarshal([]byte(`{
		"ItemID": 1043374545,
		"Name": "CD",
		"Number_of_Bids": "0",
		"Currently": "$3.00"
	}`), &item))

	assert.Equal(t, "1043374545", item.ItemID.String(), "numbers keep their verbatim text")
	assert.Equal(t, "CD", item.Name.String())
	assert.Equal(t, "0", item.NumberOfBids.String())
	assert.Equal(t, "$3.00", item.Currently.String())
}

func TestTextNullAndMissingAreNil(t *testing.T) {
	var item Item
	require.NoError(t, json.Unmarshal([]byte(`{"ItemID": "1", "Description": null}`), &item))

	assert.Nil(t, item.Description, "explicit null stays nil")
	assert.Nil(t, item.Name, "missing field stays nil")
	assert.Equal(t, "", item.Name.String(), "nil stringifies to empty")
}

func TestBidEntryWrapperShape(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{
		"Items": [{
			"ItemID": "1",
			"Bids": [
				{"Bid": {"Bidder": {"UserID": "b", "Rating": 4}, "Time": "Dec-01-01 01:00:00", "Amount": "$1.50"}}
			],
			"Category": ["Coins", null]
		}]
	}`), &doc))

	require.Len(t, doc.Items, 1)
	item := doc.Items[0]
	require.Len(t, item.Bids, 1)
	require.NotNil(t, item.Bids[0].Bid)
	assert.Equal(t, "b", item.Bids[0].Bid.Bidder.UserID.String())
	assert.Nil(t, item.Bids[0].Bid.Bidder.Location)

	require.Len(t, item.Category, 2)
	assert.Equal(t, "Coins", item.Category[0].String())
	assert.Nil(t, item.Category[1])
}
