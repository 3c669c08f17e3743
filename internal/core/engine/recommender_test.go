package engine

import (
	"reflect"
	"testing"
)

func nearMissOf(recipe, missing string) RecipeCraftability {
	return RecipeCraftability{
		RecipeID:           recipe,
		RecipeName:         recipe,
		MissingIngredients: []string{missing},
		Bucket:             BucketNearMiss,
	}
}

func TestRecommendGroupsAndRanks(t *testing.T) {
	input := []RecipeCraftability{
		nearMissOf("Martini", "Dry Vermouth"),
		nearMissOf("Daiquiri", "White Rum"),
		nearMissOf("Fifty-Fifty", "Dry Vermouth"),
		nearMissOf("Mojito", "White Rum"),
		nearMissOf("Negroni", "Campari"),
		nearMissOf("Martinez", "Dry Vermouth"),
	}
	got := Recommend(input)

	if len(got) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(got))
	}
	if got[0].Ingredient != "Dry Vermouth" || got[0].Unlocks != 3 {
		t.Errorf("top = %s/%d, want Dry Vermouth/3", got[0].Ingredient, got[0].Unlocks)
	}
	if got[1].Ingredient != "White Rum" || got[1].Unlocks != 2 {
		t.Errorf("second = %s/%d, want White Rum/2", got[1].Ingredient, got[1].Unlocks)
	}
	if got[2].Ingredient != "Campari" || got[2].Unlocks != 1 {
		t.Errorf("third = %s/%d, want Campari/1", got[2].Ingredient, got[2].Unlocks)
	}
	want := []string{"Martini", "Fifty-Fifty", "Martinez"}
	if !reflect.DeepEqual(got[0].UnlockedRecipes, want) {
		t.Errorf("unlocked = %v, want %v", got[0].UnlockedRecipes, want)
	}
}

func TestRecommendTieBreakByName(t *testing.T) {
	input := []RecipeCraftability{
		nearMissOf("Sidecar", "cointreau"),
		nearMissOf("Margarita", "Agave Syrup"),
	}
	got := Recommend(input)
	if len(got) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(got))
	}
	// 解鎖數相同，名稱不分大小寫遞增
	if got[0].Ingredient != "Agave Syrup" || got[1].Ingredient != "cointreau" {
		t.Errorf("order = [%s, %s], want [Agave Syrup, cointreau]", got[0].Ingredient, got[1].Ingredient)
	}
}

func TestRecommendMergesCaseVariants(t *testing.T) {
	input := []RecipeCraftability{
		nearMissOf("Martini", "Dry Vermouth"),
		nearMissOf("Martinez", "dry vermouth"),
	}
	got := Recommend(input)
	if len(got) != 1 {
		t.Fatalf("got %d recommendations, want 1 merged group", len(got))
	}
	if got[0].Unlocks != 2 {
		t.Errorf("unlocks = %d, want 2", got[0].Unlocks)
	}
	// 顯示名稱取第一次出現的形式
	if got[0].Ingredient != "Dry Vermouth" {
		t.Errorf("display = %s, want Dry Vermouth", got[0].Ingredient)
	}
}

func TestRecommendIgnoresMultiMissing(t *testing.T) {
	input := []RecipeCraftability{
		{
			RecipeID:           "v",
			RecipeName:         "Vesper",
			MissingIngredients: []string{"Vodka", "Lillet Blanc"},
			Bucket:             BucketPartial,
		},
	}
	if got := Recommend(input); len(got) != 0 {
		t.Errorf("multi-missing recipes must not produce recommendations, got %v", got)
	}
}

func TestRecommendEmptyInput(t *testing.T) {
	got := Recommend(nil)
	if got == nil {
		t.Fatal("want non-nil empty slice for stable JSON output")
	}
	if len(got) != 0 {
		t.Errorf("got %d recommendations, want 0", len(got))
	}
}

func TestRecommendDeterministic(t *testing.T) {
	input := []RecipeCraftability{
		nearMissOf("A", "Orgeat"),
		nearMissOf("B", "Falernum"),
		nearMissOf("C", "Orgeat"),
		nearMissOf("D", "Grenadine"),
		nearMissOf("E", "Falernum"),
	}
	first := Recommend(input)
	for i := 0; i < 10; i++ {
		if again := Recommend(input); !reflect.DeepEqual(again, first) {
			t.Fatalf("run %d differs from first run: %v vs %v", i, again, first)
		}
	}
}
