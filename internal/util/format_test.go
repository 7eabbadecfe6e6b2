package util

import "testing"

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{379.999, 380.00},
		{341.991, 341.99},
		{0.005, 0.01},
		{100, 100},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatViews(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{950, "950"},
		{1000, "1K"},
		{12400, "12.4K"},
		{1_200_000, "1.2M"},
		{2_000_000, "2M"},
	}
	for _, tt := range tests {
		if got := FormatViews(tt.in); got != tt.want {
			t.Errorf("FormatViews(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short stays", "ciao", 10, "ciao"},
		{"exact stays", "ciao", 4, "ciao"},
		{"cut gets ellipsis", "offerta imperdibile", 8, "offerta…"},
		{"multibyte safe", "già però", 5, "già…"},
		{"zero max", "ciao", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if got := []rune(Truncate(tt.in, tt.max)); len(got) > tt.max {
				t.Errorf("Truncate(%q, %d) produced %d runes", tt.in, tt.max, len(got))
			}
		})
	}
}
