package intake

import "testing"

func TestIsSpreadsheet(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"발주서.xlsx", true},
		{"invoice.XLS", true},
		{"tracking.Xlsx", true},
		{"notes.pdf", false},
		{"image.png", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := IsSpreadsheet(tt.name); got != tt.want {
			t.Errorf("IsSpreadsheet(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"../발주서.xlsx", "발주서.xlsx"},
		{"a:b*c.xlsx", "a_b_c.xlsx"},
		{"plain.xlsx", "plain.xlsx"},
		{"  ", "attachment.xlsx"},
	}
	for _, tt := range tests {
		if got := sanitizeFileName(tt.in); got != tt.want {
			t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
