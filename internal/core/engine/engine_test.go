package engine

import (
	"bytes"
	"encoding/json"
	"testing"

	"bar-assistant/internal/pkg/common"
)

func testEngine() *Engine {
	return NewWithMatcher(NewMatcher(0.5, nil))
}

func barInventory() []common.InventoryItem {
	return []common.InventoryItem{
		{ID: "i1", Name: "Gin", Category: common.CategorySpirit, StockCount: 1},
		{ID: "i2", Name: "Lime Juice", Category: common.CategoryMixer, StockCount: 2},
	}
}

func barRecipes() []common.Recipe {
	return []common.Recipe{
		{
			ID:          "r1",
			Name:        "Gimlet",
			Ingredients: common.IngredientLines{"2oz Gin", "0.75oz Lime Juice"},
		},
		{
			ID:          "r2",
			Name:        "Martini",
			Ingredients: common.IngredientLines{"2oz Gin", "0.5oz Dry Vermouth"},
		},
	}
}

func TestAnalyzeGimletMartini(t *testing.T) {
	report := testEngine().Analyze(barInventory(), barRecipes())

	if report.Stats.TotalRecipes != 2 {
		t.Fatalf("total = %d, want 2", report.Stats.TotalRecipes)
	}
	if report.Stats.Craftable != 1 || report.Stats.NearMisses != 1 {
		t.Errorf("craftable/near_miss = %d/%d, want 1/1",
			report.Stats.Craftable, report.Stats.NearMisses)
	}
	if report.CraftableRecipes[0].Name != "Gimlet" {
		t.Errorf("craftable recipe = %s, want Gimlet", report.CraftableRecipes[0].Name)
	}
	if report.NearMissRecipes[0].Name != "Martini" {
		t.Errorf("near-miss recipe = %s, want Martini", report.NearMissRecipes[0].Name)
	}
	if report.NearMissRecipes[0].MissingIngredient != "Dry Vermouth" {
		t.Errorf("missing = %q, want Dry Vermouth", report.NearMissRecipes[0].MissingIngredient)
	}
	if len(report.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(report.Recommendations))
	}
	rec := report.Recommendations[0]
	if rec.Ingredient != "Dry Vermouth" || rec.Unlocks != 1 {
		t.Errorf("recommendation = %s/%d, want Dry Vermouth/1", rec.Ingredient, rec.Unlocks)
	}
}

// 缺兩項以上的食譜不能進入採購建議
func TestAnalyzeVesperStaysOutOfRecommendations(t *testing.T) {
	recipes := append(barRecipes(), common.Recipe{
		ID:          "r3",
		Name:        "Vesper",
		Ingredients: common.IngredientLines{"1.5oz Gin", "0.5oz Vodka", "0.25oz Lillet Blanc"},
	})
	report := testEngine().Analyze(barInventory(), recipes)

	if report.Stats.Partial != 1 {
		t.Fatalf("partial = %d, want 1", report.Stats.Partial)
	}
	if report.PartialRecipes[0].Name != "Vesper" {
		t.Errorf("partial recipe = %s, want Vesper", report.PartialRecipes[0].Name)
	}
	for _, rec := range report.Recommendations {
		for _, name := range rec.UnlockedRecipes {
			if name == "Vesper" {
				t.Errorf("Vesper must not appear in recommendations, got %v", report.Recommendations)
			}
		}
	}
}

func TestAnalyzeEmptyInventory(t *testing.T) {
	recipes := []common.Recipe{
		{
			ID:   "r4",
			Name: "Zombie",
			Ingredients: common.IngredientLines{
				"1.5oz Jamaican Rum", "1.5oz Puerto Rican Rum", "1oz 151 Demerara Rum",
				"0.5oz Falernum", "0.5oz Grenadine",
			},
		},
	}
	report := testEngine().Analyze(nil, recipes)

	if report.Stats.MajorGaps != 1 {
		t.Errorf("major_gaps = %d, want 1", report.Stats.MajorGaps)
	}
	if len(report.Recommendations) != 0 {
		t.Errorf("recommendations = %v, want none", report.Recommendations)
	}
	if report.Stats.InventoryItemCount != 0 {
		t.Errorf("inventory_item_count = %d, want 0", report.Stats.InventoryItemCount)
	}
}

// 庫存歸零的品項存在目錄中但不算持有
func TestAnalyzeStockSensitivity(t *testing.T) {
	inventory := barInventory()
	inventory[0].StockCount = 0 // Gin 用完了

	report := testEngine().Analyze(inventory, barRecipes())

	if report.Stats.Craftable != 0 {
		t.Errorf("craftable = %d, want 0 with gin out of stock", report.Stats.Craftable)
	}
	if report.Stats.NearMisses != 1 || report.NearMissRecipes[0].Name != "Gimlet" {
		t.Errorf("Gimlet should become near-miss, got stats %+v", report.Stats)
	}
	// 目錄數不受庫存影響
	if report.Stats.InventoryItemCount != 2 {
		t.Errorf("inventory_item_count = %d, want 2", report.Stats.InventoryItemCount)
	}
}

func TestAnalyzePartitionInvariant(t *testing.T) {
	recipes := append(barRecipes(),
		common.Recipe{ID: "r3", Name: "Vesper",
			Ingredients: common.IngredientLines{"1.5oz Gin", "0.5oz Vodka", "0.25oz Lillet Blanc"}},
		common.Recipe{ID: "r4", Name: "Zombie",
			Ingredients: common.IngredientLines{
				"1.5oz Jamaican Rum", "1.5oz Puerto Rican Rum", "1oz 151 Demerara Rum",
				"0.5oz Falernum", "0.5oz Grenadine"}},
	)
	report := testEngine().Analyze(barInventory(), recipes)

	sum := len(report.CraftableRecipes) + len(report.NearMissRecipes) +
		len(report.PartialRecipes) + len(report.MajorGapRecipes)
	if sum != len(recipes) || report.Stats.TotalRecipes != len(recipes) {
		t.Errorf("partition broken: %d summaries / total %d, want %d",
			sum, report.Stats.TotalRecipes, len(recipes))
	}
}

// 相同輸入必須產生位元相同的 JSON 回應
func TestAnalyzeIdempotent(t *testing.T) {
	e := testEngine()
	inventory := barInventory()
	recipes := barRecipes()

	first, err := json.Marshal(e.Analyze(inventory, recipes))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(e.Analyze(inventory, recipes))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("run %d output differs:\n%s\n%s", i, first, again)
		}
	}
}

func TestAnalyzeEmptyEverything(t *testing.T) {
	report := testEngine().Analyze(nil, nil)
	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// 空輸入也要輸出完整結構，欄位為空陣列而非 null
	if bytes.Contains(data, []byte("null")) {
		t.Errorf("report contains null fields: %s", data)
	}
}
