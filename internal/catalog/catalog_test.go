package catalog

import (
	"testing"

	"wingorder/internal"
)

func testConfig() internal.PricingConfig {
	return internal.PricingConfig{
		"과일상회": {
			Products: map[string]internal.ProductPricing{
				"사과":     {SupplyPrice: 5000, DisplayName: "사과"},
				"사과 2kg": {SupplyPrice: 9000, DisplayName: "사과 2kg"},
				"배 5kg":  {SupplyPrice: 20000, DisplayName: "배 5kg", Aliases: []string{"신고배", "배세트"}},
			},
		},
		"단일": {
			Products: map[string]internal.ProductPricing{
				"유일상품": {SupplyPrice: 1000, DisplayName: "유일상품"},
			},
		},
	}
}

func TestFindProductLongestDisplayNameWins(t *testing.T) {
	cfg := testConfig()
	m := FindProduct(cfg, "과일상회", "맛있는 사과 2kg 가정용")
	if m == nil || m.Key != "사과 2kg" {
		t.Fatalf("expected 사과 2kg, got %+v", m)
	}
	m = FindProduct(cfg, "과일상회", "맛있는 사과 가정용")
	if m == nil || m.Key != "사과" {
		t.Fatalf("expected 사과, got %+v", m)
	}
}

func TestFindProductAliasBeatsDisplayName(t *testing.T) {
	cfg := testConfig()
	m := FindProduct(cfg, "과일상회", "프리미엄 신고배 혼합")
	if m == nil || m.Key != "배 5kg" {
		t.Fatalf("expected alias hit on 배 5kg, got %+v", m)
	}
}

func TestFindProductNormalizedMatch(t *testing.T) {
	cfg := testConfig()
	// Spacing differs from the catalog entry.
	m := FindProduct(cfg, "과일상회", "사과2kg 특가")
	if m == nil || m.Key != "사과 2kg" {
		t.Fatalf("expected normalized hit, got %+v", m)
	}
}

func TestFindProductSingleProductShortcut(t *testing.T) {
	cfg := testConfig()
	m := FindProduct(cfg, "단일", "전혀 다른 이름")
	if m == nil || m.Key != "유일상품" {
		t.Fatalf("expected single-product shortcut, got %+v", m)
	}
	if FindProduct(cfg, "과일상회", "전혀 다른 이름") != nil {
		t.Fatal("multi-product company must not shortcut")
	}
}

func TestFindProductUnknownCompany(t *testing.T) {
	if FindProduct(testConfig(), "없는회사", "사과") != nil {
		t.Fatal("unknown company should not match")
	}
}

func TestFindProductDisplayNameFallsBackToKey(t *testing.T) {
	cfg := internal.PricingConfig{
		"회사": {Products: map[string]internal.ProductPricing{
			"키만있음": {SupplyPrice: 100},
		}},
	}
	m := FindProduct(cfg, "회사", "키만있음 2개")
	if m == nil || m.Product.DisplayName != "키만있음" {
		t.Fatalf("expected key fallback display name, got %+v", m)
	}
}

func TestSortedCompanies(t *testing.T) {
	cfg := internal.PricingConfig{
		"연두":   {Deadline: "09:00"},
		"고랭지김치": {Deadline: "10:00"},
		"웰그린":  {Deadline: "09:00"},
		"홍게":   {},
		"가나다":  {},
	}
	got := SortedCompanies(cfg)
	want := []string{"연두", "웰그린", "고랭지김치", "홍게", "가나다"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %v, want %v", i, got, want)
		}
	}
}

func TestEditOpsRejectDuplicates(t *testing.T) {
	cfg := testConfig()
	if err := AddCompany(cfg, "과일상회"); err == nil {
		t.Fatal("duplicate company must be rejected")
	}
	if err := RenameCompany(cfg, "단일", "과일상회"); err == nil {
		t.Fatal("rename collision must be rejected")
	}
	if _, ok := cfg["단일"]; !ok {
		t.Fatal("failed rename must not mutate")
	}
	if err := AddProduct(cfg, "과일상회", "사과", internal.ProductPricing{}); err == nil {
		t.Fatal("duplicate product must be rejected")
	}
	if err := UpdateProduct(cfg, "과일상회", "사과", "사과 2kg", internal.ProductPricing{}); err == nil {
		t.Fatal("update key collision must be rejected")
	}
	if _, ok := cfg["과일상회"].Products["사과"]; !ok {
		t.Fatal("failed update must not mutate")
	}
}

func TestEditOpsHappyPath(t *testing.T) {
	cfg := testConfig()
	if err := AddCompany(cfg, "새업체"); err != nil {
		t.Fatal(err)
	}
	if err := AddProduct(cfg, "새업체", "신상", internal.ProductPricing{SupplyPrice: 700}); err != nil {
		t.Fatal(err)
	}
	if err := UpdateProduct(cfg, "새업체", "신상", "신상품", internal.ProductPricing{SupplyPrice: 800}); err != nil {
		t.Fatal(err)
	}
	if cfg["새업체"].Products["신상품"].SupplyPrice != 800 {
		t.Fatal("update not applied")
	}
	if err := DeleteProduct(cfg, "새업체", "신상품"); err != nil {
		t.Fatal(err)
	}
	if err := RenameCompany(cfg, "새업체", "새업체2"); err != nil {
		t.Fatal(err)
	}
	if err := DeleteCompany(cfg, "새업체2"); err != nil {
		t.Fatal(err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	cfg := DefaultPricing()
	data, err := ExportJSON(cfg)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ImportJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if got["연두"].Products["포기김치 3kg"].SupplyPrice != 16300 {
		t.Fatal("round trip lost supply price")
	}
	if _, err := ImportJSON([]byte("not json")); err == nil {
		t.Fatal("invalid json must fail")
	}
}
