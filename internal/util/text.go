package util

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	reSpaces     = regexp.MustCompile(`\s+`)
	reOrderToken = regexp.MustCompile(`[A-Z0-9-]{5,}`)
)

// StripSpaces removes every whitespace run from the input.
func StripSpaces(input string) string {
	return reSpaces.ReplaceAllString(input, "")
}

// NormalizeSpaces collapses whitespace runs to single spaces and trims.
func NormalizeSpaces(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}

// NormalizeOrderNumber folds an order number to its canonical join key:
// trailing ".0" (spreadsheet numeric coercion artifact) stripped, all
// non-alphanumerics removed, upper-cased. Idempotent.
func NormalizeOrderNumber(input string) string {
	s := strings.TrimSpace(input)
	s = strings.TrimSuffix(s, ".0")
	var out strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			out.WriteRune(unicode.ToUpper(r))
		}
	}
	return out.String()
}

// NormalizeMatchText lowers the input and strips commas, periods and
// whitespace so formatting noise ("2kg" vs "2 kg") does not defeat
// substring matching.
func NormalizeMatchText(input string) string {
	s := strings.ToLower(input)
	var out strings.Builder
	for _, r := range s {
		switch {
		case r == ',' || r == '.':
		case unicode.IsSpace(r):
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

// ExtractOrderNumbers pulls exclusion tokens out of free-text input:
// uppercase-alphanumeric-and-hyphen runs of length >= 5, one set across
// all lines. Tokens keep their sheet casing so they compare equal to
// raw order-number cells.
func ExtractOrderNumbers(input string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, line := range strings.Split(input, "\n") {
		for _, tok := range reOrderToken.FindAllString(line, -1) {
			out[strings.TrimSpace(tok)] = struct{}{}
		}
	}
	return out
}

// FormatComma renders an amount with thousand separators for the
// deposit summary texts (1234567 -> "1,234,567").
func FormatComma(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// ParseAmount parses a currency cell that may carry comma separators,
// a 원 suffix, or stray spaces. Returns 0 when unparsable.
func ParseAmount(input string) int64 {
	s := strings.NewReplacer(",", "", "원", "", " ", "").Replace(strings.TrimSpace(input))
	if s == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

// NaturalLess orders strings with embedded numbers numerically
// ("3kg" before "10kg"), matching the summary name ordering.
func NaturalLess(a, b string) bool {
	ar, br := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ar) && j < len(br) {
		ca, cb := ar[i], br[j]
		if unicode.IsDigit(ca) && unicode.IsDigit(cb) {
			si := i
			for i < len(ar) && unicode.IsDigit(ar[i]) {
				i++
			}
			sj := j
			for j < len(br) && unicode.IsDigit(br[j]) {
				j++
			}
			na, _ := strconv.Atoi(string(ar[si:i]))
			nb, _ := strconv.Atoi(string(br[sj:j]))
			if na != nb {
				return na < nb
			}
			continue
		}
		if ca != cb {
			return ca < cb
		}
		i++
		j++
	}
	return len(ar)-i < len(br)-j
}
