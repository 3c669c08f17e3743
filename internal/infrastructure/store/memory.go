package store

import (
	"context"
	"sync"

	"bar-assistant/internal/pkg/common"
)

// MemoryStore 記憶體後端，開發與測試用，資料不跨進程保留
type MemoryStore struct {
	mu        sync.RWMutex
	inventory map[string]map[string]common.InventoryItem // userID -> itemID -> item
	recipes   map[string]map[string]common.Recipe
	shopping  map[string]map[string]common.ShoppingItem
}

// NewMemoryStore 創建記憶體後端
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		inventory: make(map[string]map[string]common.InventoryItem),
		recipes:   make(map[string]map[string]common.Recipe),
		shopping:  make(map[string]map[string]common.ShoppingItem),
	}
}

// GetInventory 獲取使用者的完整庫存
func (s *MemoryStore) GetInventory(_ context.Context, userID string) ([]common.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]common.InventoryItem, 0, len(s.inventory[userID]))
	for _, item := range s.inventory[userID] {
		items = append(items, item)
	}
	sortInventory(items)
	return items, nil
}

// GetInventoryItem 獲取單一庫存品項
func (s *MemoryStore) GetInventoryItem(_ context.Context, userID, itemID string) (*common.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.inventory[userID][itemID]
	if !ok {
		return nil, common.ErrItemNotFound
	}
	return &item, nil
}

// SaveInventoryItem 新增或覆寫庫存品項
func (s *MemoryStore) SaveInventoryItem(_ context.Context, userID string, item common.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inventory[userID] == nil {
		s.inventory[userID] = make(map[string]common.InventoryItem)
	}
	s.inventory[userID][item.ID] = item
	return nil
}

// DeleteInventoryItem 刪除庫存品項
func (s *MemoryStore) DeleteInventoryItem(_ context.Context, userID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inventory[userID][itemID]; !ok {
		return common.ErrItemNotFound
	}
	delete(s.inventory[userID], itemID)
	return nil
}

// GetRecipes 獲取使用者的完整食譜集合
func (s *MemoryStore) GetRecipes(_ context.Context, userID string) ([]common.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recipes := make([]common.Recipe, 0, len(s.recipes[userID]))
	for _, recipe := range s.recipes[userID] {
		recipes = append(recipes, recipe)
	}
	sortRecipes(recipes)
	return recipes, nil
}

// GetRecipe 獲取單一食譜
func (s *MemoryStore) GetRecipe(_ context.Context, userID, recipeID string) (*common.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recipe, ok := s.recipes[userID][recipeID]
	if !ok {
		return nil, common.ErrRecipeNotFound
	}
	return &recipe, nil
}

// SaveRecipe 新增或覆寫食譜
func (s *MemoryStore) SaveRecipe(_ context.Context, userID string, recipe common.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recipes[userID] == nil {
		s.recipes[userID] = make(map[string]common.Recipe)
	}
	s.recipes[userID][recipe.ID] = recipe
	return nil
}

// DeleteRecipe 刪除食譜
func (s *MemoryStore) DeleteRecipe(_ context.Context, userID, recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[userID][recipeID]; !ok {
		return common.ErrRecipeNotFound
	}
	delete(s.recipes[userID], recipeID)
	return nil
}

// GetShoppingList 獲取購物清單
func (s *MemoryStore) GetShoppingList(_ context.Context, userID string) ([]common.ShoppingItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]common.ShoppingItem, 0, len(s.shopping[userID]))
	for _, item := range s.shopping[userID] {
		items = append(items, item)
	}
	return items, nil
}

// AddShoppingItem 加入購物清單
func (s *MemoryStore) AddShoppingItem(_ context.Context, userID string, item common.ShoppingItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shopping[userID] == nil {
		s.shopping[userID] = make(map[string]common.ShoppingItem)
	}
	s.shopping[userID][item.ID] = item
	return nil
}

// RemoveShoppingItem 從購物清單移除
func (s *MemoryStore) RemoveShoppingItem(_ context.Context, userID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shopping[userID][itemID]; !ok {
		return common.ErrItemNotFound
	}
	delete(s.shopping[userID], itemID)
	return nil
}

// Ping 健康檢查（記憶體後端永遠可用）
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Close 關閉
func (s *MemoryStore) Close() error {
	return nil
}
