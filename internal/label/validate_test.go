package label

import "testing"

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		upc11    string
		expected byte
	}{
		{"01234567890", '5'},
		{"03600029145", '2'}, // textbook UPC-A example
		{"00000000000", '0'},
		{"99999999999", '3'},
	}

	for _, tt := range tests {
		if got := CheckDigit(tt.upc11); got != tt.expected {
			t.Errorf("CheckDigit(%q) = %c, want %c", tt.upc11, got, tt.expected)
		}
	}
}

func TestEnsureUPC12(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		ok       bool
	}{
		{"11 digits gets check digit", "01234567890", "012345678905", true},
		{"valid 12 digits pass", "012345678905", "012345678905", true},
		{"wrong check digit rejected", "012345678901", "", false},
		{"dashes stripped", "0-12345-67890", "012345678905", true},
		{"too short", "1234567890", "", false},
		{"too long", "0123456789050", "", false},
		{"empty", "", "", false},
		{"letters only", "not-a-upc", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EnsureUPC12(tt.raw)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("EnsureUPC12(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		max      int
		expected string
	}{
		{"short stays", "abc", 10, "abc"},
		{"exact stays", "abcd", 4, "abcd"},
		{"long gets ellipsis", "abcdefgh", 6, "abc..."},
		{"tiny max cuts plain", "abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.expected)
			}
			if n := len([]rune(got)); n > tt.max {
				t.Errorf("truncate(%q, %d) is %d chars, exceeds the budget", tt.in, tt.max, n)
			}
		})
	}
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		max      int
		expected string
	}{
		{"plain ascii untouched", "Widget 12", 64, "Widget 12"},
		{"non-ascii stripped", "Café — Widget", 64, "Caf  Widget"},
		{"truncated to max", "abcdefgh", 4, "abcd"},
		{"control chars stripped", "a\tb\nc", 64, "abc"},
		{"empty stays empty", "", 64, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.in, tt.max); got != tt.expected {
				t.Errorf("SanitizeText(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.expected)
			}
		})
	}
}
