package engine

import (
	"testing"

	"bar-assistant/internal/pkg/common"
)

func testInventory() []common.InventoryItem {
	return []common.InventoryItem{
		{ID: "i1", Name: "London Dry Gin", Category: common.CategorySpirit, StockCount: 1},
		{ID: "i2", Name: "Lime Juice", Category: common.CategoryMixer, StockCount: 2},
		{ID: "i3", Name: "Angostura aromatic bitters", Category: common.CategoryOther, StockCount: 1},
	}
}

func TestMatchExactName(t *testing.T) {
	m := NewMatcher(0.5, nil)
	res := m.Match("lime juice", testInventory())
	if !res.Matched {
		t.Fatal("expected exact match")
	}
	if res.MatchedItemID != "i2" {
		t.Errorf("MatchedItemID = %q, want i2", res.MatchedItemID)
	}
}

func TestMatchSubstringBothWays(t *testing.T) {
	m := NewMatcher(0.5, nil)

	// 食材名是品項名的子字串："gin" ⊂ "london dry gin"
	if res := m.Match("gin", testInventory()); !res.Matched {
		t.Error("expected 'gin' to match 'London Dry Gin'")
	}

	// 品項名是食材名的子字串
	inv := []common.InventoryItem{{ID: "x", Name: "Campari", StockCount: 1}}
	if res := m.Match("campari bitter aperitivo", inv); !res.Matched {
		t.Error("expected item name contained in ingredient name to match")
	}
}

func TestMatchKeywordOverlap(t *testing.T) {
	m := NewMatcher(0.5, nil)

	// "angostura bitters" 不是 "angostura aromatic bitters" 的子字串，
	// 必須靠關鍵字重疊（2/2）命中
	res := m.Match("angostura bitters", testInventory())
	if !res.Matched {
		t.Fatal("expected keyword overlap match")
	}
	if res.MatchedItemID != "i3" {
		t.Errorf("MatchedItemID = %q, want i3", res.MatchedItemID)
	}
}

func TestMatchUsesItemTypeKeywords(t *testing.T) {
	m := NewMatcher(0.5, nil)
	inv := []common.InventoryItem{
		{ID: "v", Name: "Noilly Prat", Type: "Dry Vermouth", StockCount: 1},
	}
	if res := m.Match("dry vermouth", inv); !res.Matched {
		t.Error("expected type keywords to satisfy the match")
	}
}

func TestMatchStopWordsDoNotDominate(t *testing.T) {
	m := NewMatcher(0.5, nil)
	inv := []common.InventoryItem{
		{ID: "s", Name: "Demerara Syrup", StockCount: 1},
	}
	// "simple syrup"：syrup 是停用詞，剩 "simple" 對 "demerara" 不該命中
	if res := m.Match("simple syrup", inv); res.Matched {
		t.Error("stop word alone must not produce a match")
	}
}

func TestMatchNoMatch(t *testing.T) {
	m := NewMatcher(0.5, nil)
	res := m.Match("dry vermouth", testInventory())
	if res.Matched {
		t.Fatalf("unexpected match: %+v", res)
	}
	if res.MatchedItemID != "" {
		t.Errorf("MatchedItemID = %q, want empty", res.MatchedItemID)
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	m := NewMatcher(0.5, nil)
	if res := m.Match("", testInventory()); res.Matched {
		t.Error("empty core name must not match")
	}
	if res := m.Match("gin", nil); res.Matched {
		t.Error("empty inventory must not match")
	}
}

func TestMatchRuleOrder(t *testing.T) {
	m := NewMatcher(0.5, nil)
	inv := []common.InventoryItem{
		{ID: "sub", Name: "Gin Liqueur", StockCount: 1}, // 子字串會中
		{ID: "exact", Name: "Gin", StockCount: 1},       // 完全相等
	}
	res := m.Match("gin", inv)
	if !res.Matched || res.MatchedItemID != "exact" {
		t.Errorf("exact rule must win before substring, got %+v", res)
	}
}

func TestWordSimilarity(t *testing.T) {
	// 拼寫變體應視為同一個字
	if !wordsEqual("whiskey", "whisky") {
		t.Error("whiskey/whisky should be equal words")
	}
	if wordsEqual("gin", "rum") {
		t.Error("gin/rum should not be equal words")
	}
}
