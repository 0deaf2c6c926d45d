package services

import (
	"testing"

	"auction-normalizer/models"
	"auction-normalizer/storage"
	"auction-normalizer/utils"
)

func sampleAccumulator() *storage.Accumulator {
	acc := storage.NewAccumulator()
	acc.RegisterItem("1", models.ItemRow{ItemID: "1"})
	acc.RegisterItem("2", models.ItemRow{ItemID: "2"})
	acc.RegisterUser("s1", models.UserRow{UserID: `"s1"`})
	acc.RegisterUser("b1", models.UserRow{UserID: `"b1"`})
	acc.RegisterUser("b2", models.UserRow{UserID: `"b2"`})
	acc.AppendBid(models.BidRow{ItemID: "1", UserID: "b1"})
	acc.AppendBid(models.BidRow{ItemID: "1", UserID: "b2"})
	acc.AppendBid(models.BidRow{ItemID: "2", UserID: "b1"})
	acc.RegisterCategoryMembership("Coins", `"Coins"`, "1")
	acc.RegisterCategoryMembership("Clocks", `"Clocks"`, "1")
	acc.RegisterCategoryMembership("Clocks", `"Clocks"`, "2")
	return acc
}

func TestReportCounts(t *testing.T) {
	svc := NewReportService(utils.NewLogger("error"))
	r := svc.Generate(sampleAccumulator(), 3)

	if r.FilesParsed != 3 {
		t.Errorf("FilesParsed: got %d, want 3", r.FilesParsed)
	}
	if r.Items != 2 {
		t.Errorf("Items: got %d, want 2", r.Items)
	}
	if r.Users != 3 {
		t.Errorf("Users: got %d, want 3", r.Users)
	}
	if r.Bids != 3 {
		t.Errorf("Bids: got %d, want 3", r.Bids)
	}
	if r.CategoryPairs != 3 {
		t.Errorf("CategoryPairs: got %d, want 3", r.CategoryPairs)
	}
}

func TestReportTopCategories(t *testing.T) {
	svc := NewReportService(utils.NewLogger("error"))
	r := svc.Generate(sampleAccumulator(), 1)

	if len(r.TopCategories) != 2 {
		t.Fatalf("TopCategories: got %d entries, want 2", len(r.TopCategories))
	}
	if r.TopCategories[0].Category != `"Clocks"` || r.TopCategories[0].Items != 2 {
		t.Errorf("TopCategories[0]: got %+v, want Clocks with 2 items", r.TopCategories[0])
	}
	if r.TopCategories[1].Category != `"Coins"` || r.TopCategories[1].Items != 1 {
		t.Errorf("TopCategories[1]: got %+v, want Coins with 1 item", r.TopCategories[1])
	}
}

func TestReportEmptyRun(t *testing.T) {
	svc := NewReportService(utils.NewLogger("error"))
	r := svc.Generate(storage.NewAccumulator(), 0)

	if r.Items != 0 || r.Users != 0 || r.Bids != 0 || r.CategoryPairs != 0 {
		t.Errorf("empty run produced non-zero counts: %+v", r)
	}
	if len(r.TopCategories) != 0 {
		t.Errorf("empty run produced top categories: %+v", r.TopCategories)
	}
}
