package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"wingorder/internal"
	"wingorder/internal/catalog"
	"wingorder/internal/matcher"
)

func masterHeader() []string {
	row := make([]string, 31)
	row[colOrderNumber] = "주문번호"
	row[colGroup] = "그룹"
	row[colProduct] = "상품명"
	row[15] = "주문일시"
	row[colQuantity] = "수량"
	row[colRecipient] = "수취인"
	row[colPhone] = "전화번호"
	row[colZip] = "우편번호"
	row[colAddress] = "주소"
	row[colMessage] = "배송메세지"
	return row
}

func masterRow(orderNo, group, product, qty, recipient string) []string {
	row := make([]string, 31)
	row[colOrderNumber] = orderNo
	row[colGroup] = group
	row[colProduct] = product
	row[15] = "2024-03-15 10:30:00"
	row[colQuantity] = qty
	row[colRecipient] = recipient
	row[colPhone] = "010-1111-2222"
	row[colZip] = "63000"
	row[colAddress] = "제주시 어딘가 1"
	row[colMessage] = "문앞에 놓아주세요"
	return row
}

func newClassifier() *Classifier {
	return NewClassifier(matcher.New(nil, zap.NewNop()), zap.NewNop())
}

func TestClassifyKimchiOrder(t *testing.T) {
	cfg := catalog.DefaultPricing()
	rows := [][]string{
		masterHeader(),
		masterRow("ORD-1001", "포기김치", "맛있는 포기김치 3kg", "2", "김제주"),
	}
	res, err := newClassifier().Classify(context.Background(), cfg, rows, "연두", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	stat := res.Summary["포기김치 3kg"]
	if stat.Count != 2 || stat.TotalPrice != 32600 {
		t.Fatalf("summary = %+v", stat)
	}
	if res.Total != 32600 {
		t.Fatalf("total = %d", res.Total)
	}
	// qty 2 becomes two single-unit form rows
	if len(res.Rows) != 2 {
		t.Fatalf("form rows = %d", len(res.Rows))
	}
	for _, row := range res.Rows {
		if row[0] != "ORD-1001" || row[7] != "포기김치 3kg" || row[11] != "1" {
			t.Fatalf("bad form row %v", row)
		}
	}
	if !strings.Contains(res.DepositSummary, "포기김치 3kg\t2개\t32,600원") {
		t.Fatalf("deposit summary:\n%s", res.DepositSummary)
	}
	if !strings.Contains(res.DepositSummary, "총 합계\t\t32,600원") {
		t.Fatalf("deposit summary missing grand total:\n%s", res.DepositSummary)
	}
	if len(res.DailySummaries) != 1 || res.DailySummaries[0].Content == "" {
		t.Fatalf("daily summaries = %+v", res.DailySummaries)
	}
}

func TestClassifyExcludesFakeOrders(t *testing.T) {
	cfg := catalog.DefaultPricing()
	rows := [][]string{
		masterHeader(),
		masterRow("ORD-1001", "포기김치", "포기김치 3kg", "1", "김제주"),
		masterRow("ORD-1002", "포기김치", "포기김치 3kg", "1", "이서울"),
	}
	res, err := newClassifier().Classify(context.Background(), cfg, rows, "연두", "취소: ORD-1002 입니다\nORD-9999", nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Summary["포기김치 3kg"].Count != 1 {
		t.Fatalf("summary = %+v", res.Summary)
	}
	if len(res.Excluded) != 1 {
		t.Fatalf("excluded = %+v", res.Excluded)
	}
	if res.Excluded[0].OrderNumber != "ORD-1002 (제외)" {
		t.Fatalf("excluded order number = %q", res.Excluded[0].OrderNumber)
	}
	if res.Excluded[0].RecipientName != "이서울" {
		t.Fatalf("excluded recipient = %q", res.Excluded[0].RecipientName)
	}
	if len(res.ExclusionMatched) != 1 || res.ExclusionMatched[0] != "ORD-1002" {
		t.Fatalf("exclusion matched = %v", res.ExclusionMatched)
	}
	if len(res.ExclusionMissing) != 1 || res.ExclusionMissing[0] != "ORD-9999" {
		t.Fatalf("exclusion missing = %v", res.ExclusionMissing)
	}
}

func TestExclusionAudit(t *testing.T) {
	excluded := []internal.ExcludedOrder{
		{OrderNumber: "ORD-1002 (제외)"},
		{OrderNumber: "X1-00555 (제외)"},
	}
	matched, missing := ExclusionAudit("ORD-1002\n가구매 X1-00555 건\nORD-9999", excluded)
	if len(matched) != 2 || matched[0] != "ORD-1002" || matched[1] != "X1-00555" {
		t.Fatalf("matched = %v", matched)
	}
	if len(missing) != 1 || missing[0] != "ORD-9999" {
		t.Fatalf("missing = %v", missing)
	}

	matched, missing = ExclusionAudit("", nil)
	if matched != nil || missing != nil {
		t.Fatalf("empty input: matched=%v missing=%v", matched, missing)
	}
}

func TestClassifySkipsBadQuantity(t *testing.T) {
	cfg := catalog.DefaultPricing()
	rows := [][]string{
		masterHeader(),
		masterRow("ORD-1", "포기김치", "포기김치 3kg", "0", "a"),
		masterRow("ORD-2", "포기김치", "포기김치 3kg", "abc", "b"),
		masterRow("ORD-3", "포기김치", "포기김치 3kg", "1", "c"),
	}
	res, err := newClassifier().Classify(context.Background(), cfg, rows, "연두", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Summary["포기김치 3kg"].Count != 1 {
		t.Fatalf("summary = %+v", res.Summary)
	}
}

func TestClassifyManualOrder(t *testing.T) {
	cfg := catalog.DefaultPricing()
	mo := internal.ManualOrder{
		CompanyName:   "연두",
		RecipientName: "박수동",
		Phone:         "010-9999-8888",
		Address:       "서울 어딘가",
		ProductName:   "총각김치 2kg",
		Qty:           1,
	}
	res, err := newClassifier().Classify(context.Background(), cfg, nil, "연두", "", []internal.ManualOrder{mo})
	if err != nil {
		t.Fatal(err)
	}
	if res.Summary["총각김치 2kg"].Count != 1 {
		t.Fatalf("summary = %+v", res.Summary)
	}
	if len(res.Rows) != 1 || res.Rows[0][0] != manualOrderMark {
		t.Fatalf("manual row = %v", res.Rows)
	}
}

func TestClassifyNoOrders(t *testing.T) {
	cfg := catalog.DefaultPricing()
	_, err := newClassifier().Classify(context.Background(), cfg, [][]string{masterHeader()}, "연두", "", nil)
	if !errors.Is(err, ErrNoOrders) {
		t.Fatalf("err = %v", err)
	}
}

func TestClassifyRejectsConcurrentRun(t *testing.T) {
	c := newClassifier()
	c.inFlight["연두"] = true
	_, err := c.Classify(context.Background(), catalog.DefaultPricing(), nil, "연두", "", nil)
	if !errors.Is(err, ErrBusy) {
		t.Fatalf("err = %v", err)
	}
}

func TestFindHeaderRow(t *testing.T) {
	rows := [][]string{
		{"발주 취합"},
		{"", ""},
		masterHeader(),
		masterRow("ORD-1", "포기김치", "포기김치 3kg", "1", "a"),
	}
	if got := FindHeaderRow(rows); got != 2 {
		t.Fatalf("header row = %d", got)
	}
	if got := FindHeaderRow([][]string{{"a"}, {"b"}}); got != 0 {
		t.Fatalf("fallback header row = %d", got)
	}
}

func TestFilterGroupRowsStripsSpaces(t *testing.T) {
	rows := [][]string{
		masterHeader(),
		masterRow("ORD-1", "구좌  당근", "당근 3kg", "1", "a"),
		masterRow("ORD-2", "포기김치", "포기김치 3kg", "1", "b"),
	}
	got := FilterGroupRows(rows, "웰그린")
	if len(got) != 2 {
		t.Fatalf("filtered rows = %d", len(got))
	}
	if got[1][colOrderNumber] != "ORD-1" {
		t.Fatalf("wrong row kept: %v", got[1])
	}
}

func TestFilterGroupRowsBeforeClassify(t *testing.T) {
	cfg := catalog.DefaultPricing()
	master := [][]string{
		{"발주 취합"},
		masterHeader(),
		masterRow("ORD-1001", "포기김치", "포기김치 3kg", "2", "김제주"),
		masterRow("ORD-2001", "구좌 당근", "당근 3kg", "1", "이서울"),
	}

	// another vendor's rows must never reach its classification run
	_, err := newClassifier().Classify(context.Background(), cfg,
		FilterGroupRows(master, "고랭지김치"), "고랭지김치", "", nil)
	if !errors.Is(err, ErrNoOrders) {
		t.Fatalf("err = %v", err)
	}

	res, err := newClassifier().Classify(context.Background(), cfg,
		FilterGroupRows(master, "연두"), "연두", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Summary["포기김치 3kg"].Count != 2 {
		t.Fatalf("summary = %+v", res.Summary)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("form rows = %d", len(res.Rows))
	}
	// the title row is stripped, so the date column probe still works
	if len(res.DailySummaries) != 1 || res.DailySummaries[0].Date != "3/15 (금)" {
		t.Fatalf("daily summaries = %+v", res.DailySummaries)
	}
}

func TestDetectCompanies(t *testing.T) {
	cfg := catalog.DefaultPricing()
	rows := [][]string{
		masterHeader(),
		masterRow("ORD-1", "포기김치", "포기김치 3kg", "1", "a"),
		masterRow("ORD-2", "총각김치", "총각김치 2kg", "1", "b"),
		masterRow("ORD-3", "구좌 당근", "당근 3kg", "1", "c"),
	}
	got := DetectCompanies(cfg, rows)
	if got["연두"] != 2 {
		t.Fatalf("연두 count = %d", got["연두"])
	}
	if got["웰그린"] != 1 {
		t.Fatalf("웰그린 count = %d", got["웰그린"])
	}
	if _, ok := got["답도"]; ok {
		t.Fatal("답도 must not be detected")
	}
}

func TestKeywordsFallbackSplitsCommas(t *testing.T) {
	got := Keywords("총각김치,포기김치")
	if len(got) != 2 || got[0] != "총각김치" || got[1] != "포기김치" {
		t.Fatalf("keywords = %v", got)
	}
}

func TestCarrierFor(t *testing.T) {
	cases := map[string]string{
		"고랭지김치": "롯데택배",
		"답도":    "CJ 대한통운",
		"제이제이":  "한진택배",
		"웰그린":   "롯데택배",
		"모르는업체": "우체국",
	}
	for company, want := range cases {
		if got := CarrierFor(company); got != want {
			t.Errorf("CarrierFor(%q) = %q, want %q", company, got, want)
		}
	}
}
