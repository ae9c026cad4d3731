package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"wingorder/internal"
	"wingorder/internal/util"
)

var ErrNoOrderColumn = errors.New("order sheet has no order-number column")

// Vendor reply sheets with fixed layouts: order-number and tracking
// column positions that never move.
var vendorInvoiceCols = map[string][2]int{
	"고랭지김치": {9, 6},
	"제이제이":  {8, 10},
	"귤_제이":  {8, 10},
	"신선마켓":  {3, 17},
	"귤_신선":  {3, 17},
	"귤_초록":  {15, 6},
	"답도":    {0, 10},
	"한라봉_답도": {0, 10},
}

// Order forms produced by the classify step always carry the order
// number, courier and tracking slots at fixed positions for these
// vendors.
var customMergeIdx = map[string]bool{
	"연두": true, "총각김치": true, "포기김치": true, "배추김치": true, "총각김치,포기김치": true,
	"고랭지김치": true, "제이제이": true, "귤_제이": true, "신선마켓": true, "귤_신선": true,
	"귤_초록": true, "답도": true, "한라봉_답도": true, "팜플로우": true, "웰그린": true,
}

// MergeResult holds both invoice projections for one company.
type MergeResult struct {
	Header         []string
	MgmtRows       [][]string
	UploadRows     [][]string
	MgmtFileName   string
	UploadFileName string
	Stats          internal.CompanyStat
}

func findColIdx(row []string, keywords []string) int {
	for i, cell := range row {
		val := strings.ToLower(util.StripSpaces(cell))
		for _, k := range keywords {
			if strings.Contains(val, strings.ToLower(k)) {
				return i
			}
		}
	}
	return -1
}

// BuildInvoiceMap indexes a vendor reply sheet by normalized order
// number. Tracking values get the same normalization; anything shorter
// than five characters is noise; duplicates are dropped, order
// preserved.
func BuildInvoiceMap(vendorRows [][]string, company string) map[string][]string {
	invoiceMap := map[string][]string{}
	if len(vendorRows) == 0 {
		return invoiceMap
	}

	orderIdx, invIdx := -1, -1
	if isYeonduMerge(company) {
		orderIdx, invIdx = 9, 4
	} else if cols, ok := vendorInvoiceCols[company]; ok {
		orderIdx, invIdx = cols[0], cols[1]
	} else {
		headerIdx := 0
		limit := len(vendorRows)
		if limit > 20 {
			limit = 20
		}
		for i := 0; i < limit; i++ {
			rowStr := strings.Join(vendorRows[i], "")
			if strings.Contains(rowStr, "번호") || strings.Contains(rowStr, "송장") {
				headerIdx = i
				break
			}
		}
		headers := vendorRows[headerIdx]
		orderIdx = findColIdx(headers, []string{"주문번호", "관리번호", "ID"})
		invIdx = findColIdx(headers, []string{"송장", "운송장", "등기"})
		if orderIdx == -1 {
			orderIdx = 0
		}
	}

	maxIdx := orderIdx
	if invIdx > maxIdx {
		maxIdx = invIdx
	}
	for _, row := range vendorRows {
		if len(row) <= maxIdx {
			continue
		}
		key := util.NormalizeOrderNumber(row[orderIdx])
		val := util.NormalizeOrderNumber(row[invIdx])
		if key == "" || len(val) < 5 {
			continue
		}
		exists := false
		for _, existing := range invoiceMap[key] {
			if existing == val {
				exists = true
				break
			}
		}
		if !exists {
			invoiceMap[key] = append(invoiceMap[key], val)
		}
	}
	return invoiceMap
}

// Merge joins a vendor reply sheet onto the company's order sheet. The
// record projection gets one row per tracking number; the upload
// projection keeps one row per order, stamped with the first tracking.
func Merge(logger *zap.Logger, vendorRows, orderRows [][]string, company string, skipGroupCheck bool) (*MergeResult, error) {
	headerIdx := 0
	limit := len(orderRows)
	if limit > 30 {
		limit = 30
	}
	for i := 0; i < limit; i++ {
		if strings.Contains(strings.Join(orderRows[i], ""), "주문번호") {
			headerIdx = i
			break
		}
	}
	if len(orderRows) == 0 {
		return nil, ErrNoOrderColumn
	}
	header := orderRows[headerIdx]

	orderIdx, invIdx, courierIdx := 2, 4, 3
	if !customMergeIdx[company] {
		orderIdx = findColIdx(header, []string{"주문번호"})
		invIdx = findColIdx(header, []string{"운송장", "송장번호"})
		courierIdx = findColIdx(header, []string{"택배사", "배송사"})
	}
	qtyIdx := findColIdx(header, []string{"수량"})
	if orderIdx == -1 {
		return nil, ErrNoOrderColumn
	}

	invoiceMap := BuildInvoiceMap(vendorRows, company)
	courier := CarrierFor(company)
	keywords := Keywords(company)

	result := &MergeResult{Header: header}
	for i := headerIdx + 1; i < len(orderRows); i++ {
		row := orderRows[i]
		if len(row) == 0 {
			continue
		}
		if !skipGroupCheck && !GroupMatches(at(row, colGroup), keywords) {
			continue
		}

		orderNum := util.NormalizeOrderNumber(at(row, orderIdx))
		invoices := invoiceMap[orderNum]
		if len(invoices) == 0 {
			recipient := at(row, colRecipient)
			if recipient == "" {
				recipient = "알수없음"
			}
			result.Stats.Failures = append(result.Stats.Failures, internal.FailureDetail{
				OrderNumber: orderNum,
				Recipient:   recipient,
				Reason:      "송장 미매칭",
			})
			continue
		}

		result.Stats.Upload++
		for _, inv := range invoices {
			result.Stats.Mgmt++
			newRow := cloneRowFor(row, invIdx, courierIdx, qtyIdx)
			setCell(newRow, invIdx, inv)
			setCell(newRow, courierIdx, courier)
			if len(invoices) > 1 {
				setCell(newRow, qtyIdx, "1")
			}
			result.MgmtRows = append(result.MgmtRows, newRow)
		}

		upRow := cloneRowFor(row, invIdx, courierIdx, -1)
		setCell(upRow, invIdx, invoices[0])
		setCell(upRow, courierIdx, courier)
		result.UploadRows = append(result.UploadRows, upRow)
	}

	dateStr := util.Today()
	result.MgmtFileName = fmt.Sprintf("%s [%s] 기록용_송장.xlsx", dateStr, company)
	result.UploadFileName = fmt.Sprintf("%s [%s] 업로드용_송장.xlsx", dateStr, company)

	logger.Info("merged tracking numbers",
		zap.String("company", company),
		zap.Int("upload", result.Stats.Upload),
		zap.Int("mgmt", result.Stats.Mgmt),
		zap.Int("failures", len(result.Stats.Failures)),
	)
	return result, nil
}

// cloneRowFor copies a row, growing it so every stamped column exists.
func cloneRowFor(row []string, idxs ...int) []string {
	size := len(row)
	for _, idx := range idxs {
		if idx+1 > size {
			size = idx + 1
		}
	}
	out := make([]string, size)
	copy(out, row)
	return out
}

func setCell(row []string, idx int, val string) {
	if idx >= 0 && idx < len(row) {
		row[idx] = val
	}
}
