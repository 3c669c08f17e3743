package engine

import (
	"testing"
)

func TestParseStripsQuantityAndUnit(t *testing.T) {
	tests := []struct {
		raw      string
		wantCore string
	}{
		{"2 oz Gin", "gin"},
		{"2oz Gin", "gin"},
		{"0.75oz Lime Juice", "lime juice"},
		{"0.75 oz lime juice", "lime juice"},
		{"1/2 oz Simple Syrup", "simple syrup"},
		{"½ oz Simple Syrup", "simple syrup"},
		{"2 dashes Angostura Bitters", "angostura bitters"},
		{"1 barspoon Maraschino", "maraschino"},
		{"1-2 dashes Orange Bitters", "orange bitters"},
		{"Top with Soda Water", "soda water"},
		{"Egg White", "egg white"},
	}

	for _, tt := range tests {
		got := Parse(tt.raw)
		if got.CoreName != tt.wantCore {
			t.Errorf("Parse(%q).CoreName = %q, want %q", tt.raw, got.CoreName, tt.wantCore)
		}
	}
}

func TestParseStripsPreparationNotes(t *testing.T) {
	tests := []struct {
		raw      string
		wantCore string
	}{
		{"2 oz Angostura Bitters, dash", "angostura bitters"},
		{"Mint Sprig, for garnish", "mint sprig"},
		{"1 oz Lemon Juice (freshly squeezed)", "lemon juice"},
		{"Orange Twist (expressed), discarded", "orange twist"},
	}

	for _, tt := range tests {
		got := Parse(tt.raw)
		if got.CoreName != tt.wantCore {
			t.Errorf("Parse(%q).CoreName = %q, want %q", tt.raw, got.CoreName, tt.wantCore)
		}
	}
}

func TestParsePreservesDisplayCasing(t *testing.T) {
	got := Parse("2 oz London Dry Gin")
	if got.Display != "London Dry Gin" {
		t.Errorf("Display = %q, want %q", got.Display, "London Dry Gin")
	}
	if got.CoreName != "london dry gin" {
		t.Errorf("CoreName = %q, want %q", got.CoreName, "london dry gin")
	}
}

func TestParseDiscardsNoiseLines(t *testing.T) {
	for _, raw := range []string{"", "   ", ", for garnish", "(optional)"} {
		got := Parse(raw)
		if got.CoreName != "" {
			t.Errorf("Parse(%q).CoreName = %q, want empty", raw, got.CoreName)
		}
	}
}

func TestParseFallsBackOnAmbiguousLine(t *testing.T) {
	// 整段都像數量單位時退回原內容，不會變成空字串
	got := Parse("2 dashes")
	if got.CoreName == "" {
		t.Fatal("ambiguous line should fall back, not be discarded")
	}
	if got.CoreName != "2 dashes" {
		t.Errorf("CoreName = %q, want %q", got.CoreName, "2 dashes")
	}
}

func TestParseIsTotal(t *testing.T) {
	// 任何輸入都不該 panic
	for _, raw := range []string{"2", "oz", "......", "漢方苦精 2ml", "((("} {
		_ = Parse(raw)
	}
}
