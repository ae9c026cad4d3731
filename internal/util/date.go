package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekdayNames = [...]string{"일", "월", "화", "수", "목", "금", "토"}

var reFileDate = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)

// ParseRowDate turns a spreadsheet date cell into "M/D (요일)".
// Numeric cells are treated as spreadsheet serial dates (days since
// 1899-12-30); anything else goes through the usual date layouts.
// Returns "" when the cell cannot be read as a date.
func ParseRowDate(cell string) string {
	s := strings.TrimSpace(cell)
	if s == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		sec := int64((serial - 25569) * 86400)
		t := time.Unix(sec, 0).UTC()
		if t.Year() < 1990 || t.Year() > 2100 {
			return ""
		}
		return ShortDate(t)
	}
	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
		"2006/01/02 15:04:05",
		"2006/01/02",
		"2006.01.02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return ShortDate(t)
		}
	}
	return ""
}

// ShortDate renders "M/D (요일)".
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%d/%d (%s)", int(t.Month()), t.Day(), weekdayNames[int(t.Weekday())])
}

// Today returns the local date as yyyy-mm-dd.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// NowRFC3339 timestamps persisted documents.
func NowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}

// DateFromFilename extracts a yyyy-mm-dd date embedded in a filename,
// or "" when none is present.
func DateFromFilename(name string) string {
	return reFileDate.FindString(name)
}
