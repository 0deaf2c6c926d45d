package storage

import "auction-normalizer/models"

// RelationWriter is the interface any staging backend must satisfy.
type RelationWriter interface {
	WriteItems(rows []models.ItemRow) error
	WriteUsers(rows []models.UserRow) error
	WriteBids(rows []models.BidRow) error
	WriteCategories(pairs []models.CategoryPair) error
}
