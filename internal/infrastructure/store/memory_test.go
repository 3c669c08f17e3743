package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"bar-assistant/internal/pkg/common"
)

func TestMemoryStoreInventoryCRUD(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	item := common.InventoryItem{ID: "i1", Name: "Gin", Category: common.CategorySpirit, StockCount: 1}
	if err := s.SaveInventoryItem(ctx, "u1", item); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.GetInventoryItem(ctx, "u1", "i1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Gin" {
		t.Errorf("name = %s, want Gin", got.Name)
	}

	// 覆寫同 ID
	item.StockCount = 3
	if err := s.SaveInventoryItem(ctx, "u1", item); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = s.GetInventoryItem(ctx, "u1", "i1")
	if got.StockCount != 3 {
		t.Errorf("stock = %d, want 3", got.StockCount)
	}

	if err := s.DeleteInventoryItem(ctx, "u1", "i1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetInventoryItem(ctx, "u1", "i1"); err != common.ErrItemNotFound {
		t.Errorf("get after delete = %v, want ErrItemNotFound", err)
	}
	if err := s.DeleteInventoryItem(ctx, "u1", "i1"); err != common.ErrItemNotFound {
		t.Errorf("double delete = %v, want ErrItemNotFound", err)
	}
}

func TestMemoryStoreUserIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_ = s.SaveInventoryItem(ctx, "alice", common.InventoryItem{ID: "i1", Name: "Gin", Category: common.CategorySpirit, StockCount: 1})
	_ = s.SaveRecipe(ctx, "alice", common.Recipe{ID: "r1", Name: "Gimlet"})

	items, err := s.GetInventory(ctx, "bob")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("bob sees %d of alice's items", len(items))
	}
	if _, err := s.GetRecipe(ctx, "bob", "r1"); err != common.ErrRecipeNotFound {
		t.Errorf("bob reads alice's recipe: %v", err)
	}
}

func TestMemoryStoreRecipeAndShopping(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	recipe := common.Recipe{
		ID:          "r1",
		Name:        "Martini",
		Ingredients: common.IngredientLines{"2oz Gin", "0.5oz Dry Vermouth"},
	}
	if err := s.SaveRecipe(ctx, "u1", recipe); err != nil {
		t.Fatalf("save recipe: %v", err)
	}
	recipes, err := s.GetRecipes(ctx, "u1")
	if err != nil || len(recipes) != 1 {
		t.Fatalf("get recipes = %v, %v", recipes, err)
	}
	if err := s.DeleteRecipe(ctx, "u1", "nope"); err != common.ErrRecipeNotFound {
		t.Errorf("delete unknown recipe = %v, want ErrRecipeNotFound", err)
	}

	shop := common.ShoppingItem{ID: "s1", Name: "Dry Vermouth", AddedAt: time.Now()}
	if err := s.AddShoppingItem(ctx, "u1", shop); err != nil {
		t.Fatalf("add shopping: %v", err)
	}
	list, err := s.GetShoppingList(ctx, "u1")
	if err != nil || len(list) != 1 {
		t.Fatalf("shopping list = %v, %v", list, err)
	}
	if err := s.RemoveShoppingItem(ctx, "u1", "s1"); err != nil {
		t.Fatalf("remove shopping: %v", err)
	}
}

// 集合讀取不能洩漏 map 迭代順序：重複呼叫必須回傳同一個排序結果
func TestMemoryStoreStableOrdering(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	names := []string{"Vodka", "gin", "Campari", "Lime Juice", "Angostura", "Orgeat", "Rum", "Bourbon"}
	for i, name := range names {
		_ = s.SaveInventoryItem(ctx, "u1", common.InventoryItem{
			ID: fmt.Sprintf("i%d", i), Name: name, Category: common.CategorySpirit, StockCount: 1,
		})
		_ = s.SaveRecipe(ctx, "u1", common.Recipe{
			ID: fmt.Sprintf("r%d", i), Name: name + " Cocktail",
		})
	}

	first, err := s.GetInventory(ctx, "u1")
	if err != nil {
		t.Fatalf("get inventory: %v", err)
	}
	wantNames := []string{"Angostura", "Bourbon", "Campari", "gin", "Lime Juice", "Orgeat", "Rum", "Vodka"}
	for i, want := range wantNames {
		if first[i].Name != want {
			t.Fatalf("inventory[%d] = %s, want %s (order: %v)", i, first[i].Name, want, first)
		}
	}

	firstRecipes, err := s.GetRecipes(ctx, "u1")
	if err != nil {
		t.Fatalf("get recipes: %v", err)
	}
	for run := 0; run < 50; run++ {
		items, _ := s.GetInventory(ctx, "u1")
		for i := range items {
			if items[i].ID != first[i].ID {
				t.Fatalf("run %d: inventory order changed at %d: %s vs %s", run, i, items[i].ID, first[i].ID)
			}
		}
		recipes, _ := s.GetRecipes(ctx, "u1")
		for i := range recipes {
			if recipes[i].ID != firstRecipes[i].ID {
				t.Fatalf("run %d: recipe order changed at %d: %s vs %s", run, i, recipes[i].ID, firstRecipes[i].ID)
			}
		}
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = s.SaveInventoryItem(ctx, "u1", common.InventoryItem{
				ID: "i1", Name: "Gin", Category: common.CategorySpirit, StockCount: n,
			})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = s.GetInventory(ctx, "u1")
		}()
	}
	wg.Wait()

	if err := s.Ping(ctx); err != nil {
		t.Errorf("ping: %v", err)
	}
}
