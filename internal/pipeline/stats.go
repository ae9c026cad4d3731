package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"wingorder/internal"
	"wingorder/internal/util"
)

// StatsManager accumulates matched units per product display name,
// overall and per order date.
type StatsManager struct {
	Total internal.AnalysisResult
	Daily map[string]internal.AnalysisResult
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		Total: internal.AnalysisResult{},
		Daily: map[string]internal.AnalysisResult{},
	}
}

func (s *StatsManager) Add(displayName string, count int, price int64, dateStr string) {
	stat := s.Total[displayName]
	stat.Count += count
	stat.TotalPrice += int64(count) * price
	s.Total[displayName] = stat

	if dateStr != "" {
		day, ok := s.Daily[dateStr]
		if !ok {
			day = internal.AnalysisResult{}
			s.Daily[dateStr] = day
		}
		ds := day[displayName]
		ds.Count += count
		ds.TotalPrice += int64(count) * price
		day[displayName] = ds
	}
}

func sortedNames(data internal.AnalysisResult) []string {
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return util.NaturalLess(names[i], names[j]) })
	return names
}

// GenerateText renders the clipboard deposit summary: title, order
// count, one tab-separated line per product, grand total, depositor.
func (s *StatsManager) GenerateText(data internal.AnalysisResult, title string) string {
	totalCount := 0
	for _, stat := range data {
		totalCount += stat.Count
	}
	var grandTotal int64
	lines := []string{title, fmt.Sprintf("총주문수\t%d개", totalCount), ""}
	for _, name := range sortedNames(data) {
		stat := data[name]
		lines = append(lines, fmt.Sprintf("%s\t%d개\t%s원", name, stat.Count, util.FormatComma(stat.TotalPrice)))
		grandTotal += stat.TotalPrice
	}
	lines = append(lines, "", fmt.Sprintf("총 합계\t\t%s원", util.FormatComma(grandTotal)), "(입금자 "+senderName+")")
	return strings.Join(lines, "\n")
}

// GenerateExcelText renders the paste-into-spreadsheet variant: the
// first column carries the title on row one and the order count on row
// two, and the last row appends the grand total.
func (s *StatsManager) GenerateExcelText(data internal.AnalysisResult, title string) string {
	names := sortedNames(data)
	totalCount := 0
	var grandTotal int64
	for _, name := range names {
		totalCount += data[name].Count
		grandTotal += data[name].TotalPrice
	}
	lines := make([]string, 0, len(names))
	for idx, name := range names {
		stat := data[name]
		col1 := ""
		switch idx {
		case 0:
			col1 = title
		case 1:
			col1 = fmt.Sprintf("총 %d개", totalCount)
		}
		line := fmt.Sprintf("%s\t%s\t%d개\t%s", col1, name, stat.Count, util.FormatComma(stat.TotalPrice))
		if idx == len(names)-1 {
			line += "\t" + util.FormatComma(grandTotal)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
