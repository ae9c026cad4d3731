package pipeline

import (
	"strings"
	"testing"

	"wingorder/internal"
	"wingorder/internal/catalog"
)

func TestStatsManagerText(t *testing.T) {
	stats := NewStatsManager()
	stats.Add("포기김치 3kg", 2, 16300, "2024-03-15")
	stats.Add("포기김치 10kg", 1, 33000, "2024-03-15")

	text := stats.GenerateText(stats.Total, "3/15 (금) (연두)")
	lines := strings.Split(text, "\n")
	want := []string{
		"3/15 (금) (연두)",
		"총주문수\t3개",
		"",
		"포기김치 3kg\t2개\t32,600원",
		"포기김치 10kg\t1개\t33,000원",
		"",
		"총 합계\t\t65,600원",
		"(입금자 안군농원)",
	}
	if len(lines) != len(want) {
		t.Fatalf("got:\n%s", text)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestStatsManagerExcelText(t *testing.T) {
	stats := NewStatsManager()
	stats.Add("포기김치 3kg", 2, 16300, "")
	stats.Add("포기김치 10kg", 1, 33000, "")

	text := stats.GenerateExcelText(stats.Total, "3/15 (금)")
	lines := strings.Split(text, "\n")
	if len(lines) != 2 {
		t.Fatalf("got:\n%s", text)
	}
	if lines[0] != "3/15 (금)\t포기김치 3kg\t2개\t32,600" {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if lines[1] != "총 3개\t포기김치 10kg\t1개\t33,000\t65,600" {
		t.Fatalf("line 1 = %q", lines[1])
	}
}

func testSessions() []internal.Session {
	return []internal.Session{
		{
			ID: "s1", CompanyName: "연두", Round: 1, Total: 32600,
			SummaryExcel: "3/15 (금)\t포기김치 3kg\t2개\t32,600\t32,600",
			OrderRows:    [][]string{{"o1"}},
			InvoiceRows:  [][]string{{"i1"}},
			UploadRows:   [][]string{{"u1"}},
			Header:       []string{"주문번호"},
		},
		{
			ID: "s2", CompanyName: "웰그린", Round: 1, Total: 25000,
			SummaryExcel: "3/15 (금)\t사과 선물세트 (9과)\t1개\t25,000\t25,000",
			UploadRows:   [][]string{{"u2"}},
			Adjustments:  []internal.SessionAdjustment{{Label: "반품", Amount: -5000}},
		},
	}
}

func TestDepositList(t *testing.T) {
	cfg := catalog.DefaultPricing()
	transfers := []internal.ManualTransfer{{Label: "박스비", BankName: "국민", AccountNumber: "123", Amount: 3000}}
	rows, total := DepositList(cfg, testSessions(), transfers)
	if total != 32600+20000+3000 {
		t.Fatalf("total = %d", total)
	}
	// 연두 deadline 09:00 sorts first
	if rows[0][0] != "우리은행" || rows[0][3] != "연두(1차)" {
		t.Fatalf("row 0 = %v", rows[0])
	}
	if rows[1][2] != "20000" {
		t.Fatalf("adjustment not applied: %v", rows[1])
	}
	if rows[2][3] != "박스비" {
		t.Fatalf("manual transfer row = %v", rows[2])
	}
	last := rows[len(rows)-1]
	if last[1] != "합계" || last[2] != "55600" {
		t.Fatalf("total row = %v", last)
	}
	if len(rows[len(rows)-2]) != 0 {
		t.Fatal("blank row missing before total")
	}
}

func TestBuildWorkLog(t *testing.T) {
	cfg := catalog.DefaultPricing()
	log := BuildWorkLog(cfg, testSessions(), nil)

	if log.SummaryRows[0][0] != "[연두 정산내역]" {
		t.Fatalf("summary rows = %v", log.SummaryRows[:2])
	}
	if log.DepositTotal != 52600 {
		t.Fatalf("deposit total = %d", log.DepositTotal)
	}
	if len(log.OrderRows) != 1 || log.OrderRows[0][0] != "o1" {
		t.Fatalf("order rows = %v", log.OrderRows)
	}
	if len(log.InvoiceRows) != 1 {
		t.Fatalf("invoice rows = %v", log.InvoiceRows)
	}

	// margin sheet pulls the configured margin for 웰그린 gift sets
	foundMargin := false
	for _, row := range log.MarginRows {
		if len(row) >= 7 && row[1] == "사과 선물세트 (9과)" {
			if row[5] != "3976" || row[6] != "3976" {
				t.Fatalf("margin row = %v", row)
			}
			foundMargin = true
		}
	}
	if !foundMargin {
		t.Fatalf("margin sheet missing product: %v", log.MarginRows)
	}
	last := log.MarginRows[len(log.MarginRows)-1]
	if last[5] != "총 마진" || last[6] != "3976" {
		t.Fatalf("margin total row = %v", last)
	}
}

func TestSalesFromSessions(t *testing.T) {
	cfg := catalog.DefaultPricing()
	records := SalesFromSessions("2024-03-15", cfg, testSessions())
	if len(records) != 2 {
		t.Fatalf("records = %+v", records)
	}
	r := records[0]
	if r.Company != "연두" || r.Product != "포기김치 3kg" || r.Count != 2 || r.TotalPrice != 32600 {
		t.Fatalf("record = %+v", r)
	}
	if r.SupplyPrice != 16300 {
		t.Fatalf("supply price = %d", r.SupplyPrice)
	}
	if records[1].Margin != 3976 {
		t.Fatalf("margin = %d", records[1].Margin)
	}
}

func TestMergedUploadRows(t *testing.T) {
	header, rows, companies := MergedUploadRows(testSessions())
	if len(rows) != 2 {
		t.Fatalf("rows = %v", rows)
	}
	if len(header) != 1 || header[0] != "주문번호" {
		t.Fatalf("header = %v", header)
	}
	if len(companies) != 2 {
		t.Fatalf("companies = %v", companies)
	}
	name := MergedUploadFileName([]string{"연두", "웰그린", "답도", "홍게"})
	if !strings.Contains(name, "외 1곳") {
		t.Fatalf("file name = %q", name)
	}
}

func TestParseBulkTransfers(t *testing.T) {
	got := ParseBulkTransfers("31,000원 홍길동 국민\n\n5000\n99 너무작음")
	if len(got) != 2 {
		t.Fatalf("transfers = %+v", got)
	}
	if got[0].Amount != 31000 || got[0].Label != "홍길동 국민" {
		t.Fatalf("transfer 0 = %+v", got[0])
	}
	if got[1].Amount != 5000 || got[1].Label != "수동 지출" {
		t.Fatalf("transfer 1 = %+v", got[1])
	}
}

func TestImportWorkLog(t *testing.T) {
	sheets := []NamedSheet{
		{Name: "요약시트", Rows: [][]string{
			{"[연두 정산내역]"},
			{"3/15 (금)", "포기김치 3kg", "2개", "32,600"},
			{},
		}},
		{Name: "발주시트", Rows: [][]string{{"o1"}}},
		{Name: "입금내역", Rows: [][]string{
			{"우리은행", "1005103634084", "32600"},
			{},
			{"", "합계", "32600"},
		}},
	}
	sales, imported := ImportWorkLog("2024-03-15_업무일지.xlsx", sheets)
	if imported != 3 {
		t.Fatalf("imported = %d", imported)
	}
	if sales.Date != "2024-03-15" {
		t.Fatalf("date = %q", sales.Date)
	}
	if len(sales.Records) != 1 || sales.Records[0].TotalPrice != 32600 || sales.Records[0].SupplyPrice != 16300 {
		t.Fatalf("records = %+v", sales.Records)
	}
	if sales.DepositTotal != 32600 || len(sales.DepositRecords) != 1 {
		t.Fatalf("deposits = %+v total %d", sales.DepositRecords, sales.DepositTotal)
	}
	if sales.TotalAmount != 32600 {
		t.Fatalf("total = %d", sales.TotalAmount)
	}

	if _, imported := ImportWorkLog("빈파일.xlsx", nil); imported != 0 {
		t.Fatal("empty workbook must import nothing")
	}
}
