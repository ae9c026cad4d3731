package pipeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"wingorder/internal"
	"wingorder/internal/catalog"
	"wingorder/internal/util"
)

var (
	reCompanyBlock = regexp.MustCompile(`^\[(.+?)\s*정산내역\]$`)
	reCountCell    = regexp.MustCompile(`(\d+)개`)
)

// SessionTotal is the settlement amount of one session: its summary
// total plus every signed adjustment.
func SessionTotal(s internal.Session) int64 {
	total := s.Total
	for _, adj := range s.Adjustments {
		total += adj.Amount
	}
	return total
}

func sessionsByCompany(sessions []internal.Session) map[string][]internal.Session {
	grouped := map[string][]internal.Session{}
	for _, s := range sessions {
		grouped[s.CompanyName] = append(grouped[s.CompanyName], s)
	}
	return grouped
}

// DepositList renders the bank-transfer checklist: one row per session
// with money owed, company deadline order, manual transfers appended,
// closed by a blank row and the grand total.
func DepositList(cfg internal.PricingConfig, sessions []internal.Session, transfers []internal.ManualTransfer) ([][]string, int64) {
	grouped := sessionsByCompany(sessions)
	var rows [][]string
	var total int64

	for _, name := range catalog.SortedCompanies(cfg) {
		companyCfg := cfg[name]
		for _, s := range grouped[name] {
			amount := SessionTotal(s)
			if amount <= 0 {
				continue
			}
			bank := companyCfg.BankName
			if bank == "" {
				bank = "은행미지정"
			}
			account := companyCfg.AccountNumber
			if account == "" {
				account = "계좌미지정"
			}
			rows = append(rows, []string{bank, account, strconv.FormatInt(amount, 10), fmt.Sprintf("%s(%d차)", name, s.Round)})
			total += amount
		}
	}
	for _, t := range transfers {
		rows = append(rows, []string{t.BankName, t.AccountNumber, strconv.FormatInt(t.Amount, 10), t.Label})
		total += t.Amount
	}
	if len(rows) == 0 {
		return nil, 0
	}
	rows = append(rows, []string{}, []string{"", "합계", strconv.FormatInt(total, 10)})
	return rows, total
}

// WorkLog is the end-of-day workbook: settlement summaries, deposits,
// concatenated order and tracking rows, and the margin breakdown.
type WorkLog struct {
	FileName     string
	SummaryRows  [][]string
	DepositRows  [][]string
	OrderRows    [][]string
	InvoiceRows  [][]string
	MarginRows   [][]string
	DepositTotal int64
}

// BuildWorkLog assembles the daily work log from the day's sessions.
func BuildWorkLog(cfg internal.PricingConfig, sessions []internal.Session, transfers []internal.ManualTransfer) *WorkLog {
	grouped := sessionsByCompany(sessions)
	ordered := catalog.SortedCompanies(cfg)
	log := &WorkLog{FileName: util.Today() + "_업무일지.xlsx"}

	for _, name := range ordered {
		headerAdded := false
		for _, s := range grouped[name] {
			text := strings.TrimSpace(s.SummaryExcel)
			if text == "" {
				continue
			}
			if !headerAdded {
				log.SummaryRows = append(log.SummaryRows, []string{fmt.Sprintf("[%s 정산내역]", name)})
				headerAdded = true
			}
			for _, line := range strings.Split(s.SummaryExcel, "\n") {
				log.SummaryRows = append(log.SummaryRows, strings.Split(line, "\t"))
			}
			log.SummaryRows = append(log.SummaryRows, []string{})
		}
	}

	for _, name := range ordered {
		companyCfg := cfg[name]
		for _, s := range grouped[name] {
			amount := SessionTotal(s)
			if amount <= 0 {
				continue
			}
			log.DepositRows = append(log.DepositRows, []string{companyCfg.BankName, companyCfg.AccountNumber, strconv.FormatInt(amount, 10)})
			log.DepositTotal += amount
		}
	}
	for _, t := range transfers {
		log.DepositRows = append(log.DepositRows, []string{t.BankName, t.AccountNumber, strconv.FormatInt(t.Amount, 10)})
		log.DepositTotal += t.Amount
	}
	if len(log.DepositRows) > 0 {
		log.DepositRows = append(log.DepositRows, []string{}, []string{"", "합계", strconv.FormatInt(log.DepositTotal, 10)})
	}

	for _, name := range ordered {
		for _, s := range grouped[name] {
			log.OrderRows = append(log.OrderRows, s.OrderRows...)
			log.InvoiceRows = append(log.InvoiceRows, s.InvoiceRows...)
		}
	}

	log.MarginRows = buildMarginRows(cfg, log.SummaryRows)
	return log
}

// buildMarginRows recomputes per-product margin from the summary sheet
// and the catalog.
func buildMarginRows(cfg internal.PricingConfig, summaryRows [][]string) [][]string {
	rows := [][]string{{"업체명", "품목명", "수량", "판매가", "공급가", "마진(개당)", "총마진"}}
	currentCompany := ""
	var totalMargin int64

	for _, row := range summaryRows {
		firstCell := strings.TrimSpace(at(row, 0))
		if m := reCompanyBlock.FindStringSubmatch(firstCell); m != nil {
			currentCompany = m[1]
			continue
		}
		if currentCompany == "" || len(row) < 3 {
			continue
		}
		productName := strings.TrimSpace(at(row, 1))
		countMatch := reCountCell.FindStringSubmatch(strings.TrimSpace(at(row, 2)))
		if productName == "" || countMatch == nil {
			continue
		}
		count, _ := strconv.Atoi(countMatch[1])
		companyCfg, ok := cfg[currentCompany]
		if !ok {
			continue
		}
		var sellingPrice, supplyPrice, margin int64
		for _, p := range companyCfg.Products {
			if p.DisplayName == productName {
				sellingPrice = p.SellingPrice
				supplyPrice = p.SupplyPrice
				margin = p.Margin
				break
			}
		}
		lineMargin := margin * int64(count)
		totalMargin += lineMargin
		rows = append(rows, []string{
			currentCompany, productName, strconv.Itoa(count),
			strconv.FormatInt(sellingPrice, 10), strconv.FormatInt(supplyPrice, 10),
			strconv.FormatInt(margin, 10), strconv.FormatInt(lineMargin, 10),
		})
	}
	if len(rows) == 1 {
		return nil
	}
	rows = append(rows, []string{}, []string{"", "", "", "", "", "총 마진", strconv.FormatInt(totalMargin, 10)})
	return rows
}

// MergedUploadRows concatenates the upload projections of the chosen
// sessions under the first available header.
func MergedUploadRows(sessions []internal.Session) ([]string, [][]string, []string) {
	var header []string
	var rows [][]string
	var companies []string
	for _, s := range sessions {
		if len(s.UploadRows) == 0 {
			continue
		}
		if len(header) == 0 && len(s.Header) > 0 {
			header = s.Header
		}
		rows = append(rows, s.UploadRows...)
		seen := false
		for _, c := range companies {
			if c == s.CompanyName {
				seen = true
				break
			}
		}
		if !seen {
			companies = append(companies, s.CompanyName)
		}
	}
	return header, rows, companies
}

// MergedUploadFileName names the merged upload workbook, shortening the
// company list past three names.
func MergedUploadFileName(companies []string) string {
	companiesStr := strings.Join(companies, ", ")
	if len(companies) > 3 {
		companiesStr = fmt.Sprintf("%s 외 %d곳", strings.Join(companies[:3], ", "), len(companies)-3)
	}
	return fmt.Sprintf("%s [%s] 업로드용_송장_병합.xlsx", util.Today(), companiesStr)
}

// SalesFromSessions parses the day's settlement summaries back into
// per-product sales records, pulling the configured margin by display
// name.
func SalesFromSessions(date string, cfg internal.PricingConfig, sessions []internal.Session) []internal.SalesRecord {
	var records []internal.SalesRecord
	for _, s := range sessions {
		companyCfg, ok := cfg[s.CompanyName]
		if !ok {
			continue
		}
		if strings.TrimSpace(s.SummaryExcel) == "" {
			continue
		}
		for _, line := range strings.Split(s.SummaryExcel, "\n") {
			parts := strings.Split(line, "\t")
			if len(parts) < 3 {
				continue
			}
			productName := strings.TrimSpace(parts[1])
			countMatch := reCountCell.FindStringSubmatch(parts[2])
			if productName == "" || countMatch == nil {
				continue
			}
			count, _ := strconv.Atoi(countMatch[1])
			var totalPrice int64
			if len(parts) > 3 {
				totalPrice = util.ParseAmount(parts[3])
			}
			var supplyPrice int64
			if count > 0 {
				supplyPrice = (totalPrice + int64(count)/2) / int64(count)
			}
			var margin int64
			for _, p := range companyCfg.Products {
				if p.DisplayName == productName {
					margin = p.Margin
					break
				}
			}
			records = append(records, internal.SalesRecord{
				Date: date, Company: s.CompanyName, Product: productName,
				Count: count, SupplyPrice: supplyPrice, TotalPrice: totalPrice, Margin: margin,
			})
		}
	}
	return records
}

// ParseBulkTransfers reads free-text transfer lines. The first token
// that cleans to a plain number of at least 100 is the amount; every
// other token joins the label.
func ParseBulkTransfers(text string) []internal.ManualTransfer {
	var out []internal.ManualTransfer
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var amount int64
		var labelParts []string
		for _, p := range strings.Fields(line) {
			clean := strings.NewReplacer(",", "", "원", "").Replace(p)
			if n, err := strconv.ParseInt(clean, 10, 64); err == nil && n >= 100 && amount == 0 {
				amount = n
				continue
			}
			labelParts = append(labelParts, p)
		}
		if amount <= 0 {
			continue
		}
		label := strings.Join(labelParts, " ")
		if label == "" {
			label = "수동 지출"
		}
		out = append(out, internal.ManualTransfer{
			ID:            uuid.NewString(),
			Label:         label,
			BankName:      "은행",
			AccountNumber: "계좌",
			Amount:        amount,
		})
	}
	return out
}

// NamedSheet pairs a workbook sheet name with its rows.
type NamedSheet struct {
	Name string
	Rows [][]string
}

func findSheet(sheets []NamedSheet, keywords ...string) [][]string {
	for _, s := range sheets {
		for _, k := range keywords {
			if strings.Contains(s.Name, k) {
				return s.Rows
			}
		}
	}
	return nil
}

// ImportWorkLog parses a previously exported work-log workbook back
// into a daily sales document. The date comes from the filename, or
// today when absent.
func ImportWorkLog(fileName string, sheets []NamedSheet) (internal.DailySales, int) {
	date := util.DateFromFilename(fileName)
	if date == "" {
		date = util.Today()
	}

	summaryRows := findSheet(sheets, "요약", "Summary")
	if summaryRows == nil && len(sheets) > 0 {
		summaryRows = sheets[0].Rows
	}

	var records []internal.SalesRecord
	currentCompany := ""
	for _, row := range summaryRows {
		if len(row) == 0 {
			continue
		}
		firstCell := strings.TrimSpace(at(row, 0))
		if m := reCompanyBlock.FindStringSubmatch(firstCell); m != nil {
			currentCompany = m[1]
			continue
		}
		if currentCompany == "" || len(row) < 3 {
			continue
		}
		productName := strings.TrimSpace(at(row, 1))
		countMatch := reCountCell.FindStringSubmatch(strings.TrimSpace(at(row, 2)))
		if productName == "" || countMatch == nil {
			continue
		}
		count, _ := strconv.Atoi(countMatch[1])
		totalPrice := util.ParseAmount(at(row, 3))
		var supplyPrice int64
		if count > 0 {
			supplyPrice = (totalPrice + int64(count)/2) / int64(count)
		}
		records = append(records, internal.SalesRecord{
			Date: date, Company: currentCompany, Product: productName,
			Count: count, SupplyPrice: supplyPrice, TotalPrice: totalPrice,
		})
	}

	orderRows := findSheet(sheets, "발주")
	invoiceRows := findSheet(sheets, "송장")

	var deposits []internal.DepositRecord
	var depositTotal int64
	for _, row := range findSheet(sheets, "입금") {
		if len(row) < 3 {
			continue
		}
		bankName := strings.TrimSpace(at(row, 0))
		accountNumber := strings.TrimSpace(at(row, 1))
		amount := util.ParseAmount(at(row, 2))
		if bankName == "" && accountNumber == "합계" {
			depositTotal = amount
			continue
		}
		if amount > 0 {
			deposits = append(deposits, internal.DepositRecord{
				BankName:      bankName,
				AccountNumber: accountNumber,
				Amount:        amount,
				Label:         strings.TrimSpace(at(row, 3)),
			})
		}
	}
	if depositTotal == 0 {
		for _, d := range deposits {
			depositTotal += d.Amount
		}
	}

	imported := len(records) + len(orderRows) + len(invoiceRows) + len(deposits)
	if imported == 0 {
		return internal.DailySales{}, 0
	}

	var totalAmount int64
	for _, r := range records {
		totalAmount += r.TotalPrice
	}
	return internal.DailySales{
		Date:           date,
		Records:        records,
		TotalAmount:    totalAmount,
		SavedAt:        util.NowRFC3339(),
		OrderRows:      orderRows,
		InvoiceRows:    invoiceRows,
		DepositRecords: deposits,
		DepositTotal:   depositTotal,
	}, imported
}
