package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain string untouched", "Weekly Sync", "Weekly Sync"},
		{"surrounding whitespace trimmed", "  Weekly Sync  ", "Weekly Sync"},
		{"internal runs collapsed", "Weekly \t  Sync", "Weekly Sync"},
		{"newlines collapse to spaces", "Weekly\nSync", "Weekly Sync"},
		{"empty stays empty", "", ""},
		{"whitespace-only becomes empty", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Alice@Example.COM "); got != "alice@example.com" {
		t.Errorf("NormalizeEmail() = %q, want %q", got, "alice@example.com")
	}
}
