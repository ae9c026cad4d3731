package storage

import (
	"path/filepath"
	"testing"

	"wingorder/internal"
	"wingorder/internal/catalog"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCatalogSeedAndRoundTrip(t *testing.T) {
	db := openTestDB(t)
	defaults := catalog.DefaultPricing()

	cfg, err := db.LoadCatalog(defaults)
	if err != nil {
		t.Fatal(err)
	}
	if cfg["연두"].Products["포기김치 3kg"].SupplyPrice != 16300 {
		t.Fatal("seed missing default entry")
	}

	if err := catalog.AddCompany(cfg, "새업체"); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveCatalog(cfg); err != nil {
		t.Fatal(err)
	}

	reloaded, err := db.LoadCatalog(defaults)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := reloaded["새업체"]; !ok {
		t.Fatal("saved company lost on reload")
	}
}

func TestDailySalesOverwrite(t *testing.T) {
	db := openTestDB(t)
	first := internal.DailySales{
		Date:        "2024-03-15",
		Records:     []internal.SalesRecord{{Date: "2024-03-15", Company: "연두", Product: "포기김치 3kg", Count: 2, TotalPrice: 32600}},
		TotalAmount: 32600,
		SavedAt:     "2024-03-15T18:00:00+09:00",
	}
	if err := db.UpsertDailySales(first); err != nil {
		t.Fatal(err)
	}

	second := first
	second.Records = nil
	second.TotalAmount = 0
	if err := db.UpsertDailySales(second); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetDailySales("2024-03-15")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got.Records) != 0 || got.TotalAmount != 0 {
		t.Fatalf("overwrite not wholesale: %+v", got)
	}

	if err := db.DeleteDailySales("2024-03-15"); err != nil {
		t.Fatal(err)
	}
	got, err = db.GetDailySales("2024-03-15")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatal("delete did not remove document")
	}
}

func TestListDailySalesNewestFirst(t *testing.T) {
	db := openTestDB(t)
	for _, date := range []string{"2024-03-14", "2024-03-16", "2024-03-15"} {
		if err := db.UpsertDailySales(internal.DailySales{Date: date}); err != nil {
			t.Fatal(err)
		}
	}
	list, err := db.ListDailySales()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 || list[0].Date != "2024-03-16" || list[2].Date != "2024-03-14" {
		t.Fatalf("order = %+v", list)
	}
}

func TestWorkspaceFieldMerge(t *testing.T) {
	db := openTestDB(t)
	if err := db.SaveWorkspaceField("2024-03-15", "fakeOrders", "취소: ORD-1"); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveWorkspaceField("2024-03-15", "round", 2); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveWorkspaceField("2024-03-15", "round", 3); err != nil {
		t.Fatal(err)
	}

	fields, err := db.LoadWorkspace("2024-03-15")
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 2 {
		t.Fatalf("fields = %v", fields)
	}
	if string(fields["round"]) != "3" {
		t.Fatalf("round = %s", fields["round"])
	}
	if string(fields["fakeOrders"]) != `"취소: ORD-1"` {
		t.Fatalf("fakeOrders = %s", fields["fakeOrders"])
	}
}

func TestInboxIdempotentUpsert(t *testing.T) {
	db := openTestDB(t)
	file := internal.InboxFile{
		MessageID: "<m1@mail>",
		Subject:   "발주 취합",
		Sender:    "vendor@example.com",
		FileName:  "orders.xlsx",
		Path:      "/data/inbox/orders.xlsx",
		Status:    "fetched",
	}
	if err := db.UpsertInboxFile(file); err != nil {
		t.Fatal(err)
	}
	if err := db.UpsertInboxFile(file); err != nil {
		t.Fatal(err)
	}

	list, err := db.ListInboxFiles("fetched", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("list = %+v", list)
	}

	seen, err := db.HasInboxMessage("<m1@mail>")
	if err != nil {
		t.Fatal(err)
	}
	if !seen {
		t.Fatal("message not recorded")
	}

	if err := db.UpdateInboxStatus(list[0].ID, "processed"); err != nil {
		t.Fatal(err)
	}
	list, err = db.ListInboxFiles("fetched", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("status filter failed: %+v", list)
	}
}
