package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"wingorder/internal"
	"wingorder/internal/matcher"
	"wingorder/internal/util"
)

var (
	ErrBusy           = errors.New("company is already being processed")
	ErrUnknownCompany = errors.New("company is not in the catalog")
	ErrNoOrders       = errors.New("no matching orders for company")
)

var dateHeaders = []string{"주문일시", "주문일", "결제일", "발주발송일", "접수일"}

// DailySummary is the deposit summary for one order date.
type DailySummary struct {
	Date    string
	Content string
}

// ClassifyResult is the outcome of one company's classification run.
type ClassifyResult struct {
	CompanyName         string
	FileName            string
	Header              []string
	Rows                [][]string
	Summary             internal.AnalysisResult
	Total               int64
	DepositSummary      string
	DepositSummaryExcel string
	DailySummaries      []DailySummary
	Excluded            []internal.ExcludedOrder
	ExclusionMatched    []string
	ExclusionMissing    []string
	Unmatched           int
}

// Classifier turns master-file rows into per-vendor order forms. One
// run per company at a time; overlapping runs for the same company are
// rejected with ErrBusy.
type Classifier struct {
	matcher *matcher.Matcher
	logger  *zap.Logger

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewClassifier(m *matcher.Matcher, logger *zap.Logger) *Classifier {
	return &Classifier{
		matcher:  m,
		logger:   logger.Named("classify"),
		inFlight: map[string]bool{},
	}
}

// FindHeaderRow locates the header row within the first 20 rows of a
// master file, falling back to row zero.
func FindHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > 20 {
		limit = 20
	}
	for i := 0; i < limit; i++ {
		rowStr := strings.ToLower(strings.Join(rows[i], " "))
		if strings.Contains(rowStr, "주문번호") ||
			(strings.Contains(rowStr, "수취인") && strings.Contains(rowStr, "전화번호")) ||
			strings.Contains(rowStr, "상품명") ||
			strings.Contains(rowStr, "그룹") {
			return i
		}
	}
	return 0
}

// FilterGroupRows keeps the header row plus every body row whose group
// cell matches the company's keywords.
func FilterGroupRows(rows [][]string, company string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	headerIdx := FindHeaderRow(rows)
	keywords := Keywords(company)
	out := [][]string{rows[headerIdx]}
	for i := headerIdx + 1; i < len(rows); i++ {
		if GroupMatches(at(rows[i], colGroup), keywords) {
			out = append(out, rows[i])
		}
	}
	return out
}

// DetectCompanies lists the catalog companies that own at least one
// row of a master file, with their row counts.
func DetectCompanies(cfg internal.PricingConfig, rows [][]string) map[string]int {
	counts := map[string]int{}
	if len(rows) == 0 {
		return counts
	}
	headerIdx := FindHeaderRow(rows)
	for company := range cfg {
		keywords := Keywords(company)
		n := 0
		for i := headerIdx + 1; i < len(rows); i++ {
			if GroupMatches(at(rows[i], colGroup), keywords) {
				n++
			}
		}
		if n > 0 {
			counts[company] = n
		}
	}
	return counts
}

// ExclusionAudit splits the exclusion-input order numbers into those
// that matched an excluded order and those never found in the sheet, so
// stale entries in the pasted list surface for review.
func ExclusionAudit(exclusionText string, excluded []internal.ExcludedOrder) (matched, missing []string) {
	inputs := util.ExtractOrderNumbers(exclusionText)
	found := map[string]bool{}
	for _, ex := range excluded {
		found[strings.TrimSpace(strings.TrimSuffix(ex.OrderNumber, " (제외)"))] = true
	}

	numbers := make([]string, 0, len(inputs))
	for num := range inputs {
		numbers = append(numbers, num)
	}
	sort.Strings(numbers)
	for _, num := range numbers {
		if found[num] {
			matched = append(matched, num)
		} else {
			missing = append(missing, num)
		}
	}
	return matched, missing
}

// Classify builds the order form for one company from pre-filtered
// rows (header first), folding in manual orders and dropping rows whose
// order numbers appear in the exclusion text.
func (c *Classifier) Classify(ctx context.Context, cfg internal.PricingConfig, rows [][]string, company, exclusionText string, manual []internal.ManualOrder) (*ClassifyResult, error) {
	companyCfg, ok := cfg[company]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompany, company)
	}

	c.mu.Lock()
	if c.inFlight[company] {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrBusy, company)
	}
	c.inFlight[company] = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.inFlight, company)
		c.mu.Unlock()
	}()

	start := time.Now()
	excludedSet := util.ExtractOrderNumbers(exclusionText)

	stats := NewStatsManager()
	result := &ClassifyResult{
		CompanyName: company,
		Summary:     internal.AnalysisResult{},
	}

	if len(rows) > 0 {
		headers := rows[0]
		dateColIdx := -1
		for i, h := range headers {
			for _, dh := range dateHeaders {
				if strings.Contains(strings.TrimSpace(h), dh) {
					dateColIdx = i
					break
				}
			}
			if dateColIdx != -1 {
				break
			}
		}

		for _, row := range rows[1:] {
			orderNumber := at(row, colOrderNumber)
			productName := at(row, colProduct)

			if _, excluded := excludedSet[orderNumber]; excluded {
				result.Excluded = append(result.Excluded, internal.ExcludedOrder{
					CompanyName:   company,
					RecipientName: at(row, colRecipient),
					ProductName:   productName,
					Phone:         at(row, colPhone),
					OrderNumber:   orderNumber + " (제외)",
				})
				continue
			}

			qty, err := strconv.Atoi(at(row, colQuantity))
			if err != nil || qty < 1 {
				continue
			}

			rawName := strings.TrimSpace(at(row, colGroup) + " " + productName)
			match := c.matcher.Resolve(ctx, cfg, company, rawName)
			if match == nil {
				result.Unmatched++
				c.logger.Debug("no catalog match for row",
					zap.String("company", company),
					zap.String("raw", rawName),
				)
				continue
			}

			stat := result.Summary[match.Key]
			stat.Count += qty
			stat.TotalPrice += int64(qty) * match.Product.SupplyPrice
			result.Summary[match.Key] = stat

			dateStr := ""
			if dateColIdx != -1 {
				dateStr = util.ParseRowDate(at(row, dateColIdx))
			}
			stats.Add(match.Product.DisplayName, qty, match.Product.SupplyPrice, dateStr)
			result.Rows = append(result.Rows, BuildOrderRows(company, row, match.Product.DisplayName, qty, companyCfg)...)
		}
	}

	result.ExclusionMatched, result.ExclusionMissing = ExclusionAudit(exclusionText, result.Excluded)

	today := time.Now()
	todayStr := today.Format("2006-01-02")
	for _, mo := range manual {
		match := c.matcher.Resolve(ctx, cfg, company, mo.ProductName)
		if match == nil {
			result.Unmatched++
			continue
		}
		stat := result.Summary[match.Key]
		stat.Count += mo.Qty
		stat.TotalPrice += int64(mo.Qty) * match.Product.SupplyPrice
		result.Summary[match.Key] = stat
		stats.Add(match.Product.DisplayName, mo.Qty, match.Product.SupplyPrice, todayStr)
		result.Rows = append(result.Rows, BuildManualOrderRows(company, mo, match.Product.DisplayName, companyCfg)...)
	}

	if len(result.Rows) == 0 && len(result.Summary) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoOrders, company)
	}

	for _, stat := range result.Summary {
		result.Total += stat.TotalPrice
	}

	result.Header = HeadersFor(company, companyCfg)
	result.FileName = fmt.Sprintf("%s %s 발주서.xlsx", todayStr, company)

	dateTitle := util.ShortDate(today)
	result.DepositSummary = stats.GenerateText(stats.Total, fmt.Sprintf("%s (%s)", dateTitle, company))
	result.DepositSummaryExcel = stats.GenerateExcelText(stats.Total, dateTitle)

	dates := make([]string, 0, len(stats.Daily))
	for date := range stats.Daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		result.DailySummaries = append(result.DailySummaries, DailySummary{
			Date:    date,
			Content: stats.GenerateText(stats.Daily[date], date),
		})
	}

	c.logger.Info("classified company orders",
		zap.String("company", company),
		zap.Int("formRows", len(result.Rows)),
		zap.Int("excluded", len(result.Excluded)),
		zap.Int("unmatched", result.Unmatched),
		zap.Duration("took", time.Since(start)),
	)
	return result, nil
}
