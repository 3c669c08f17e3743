// Package store 提供每位使用者的酒吧資料持久層。
// 支援 Redis 與記憶體兩種後端，由設定 store.backend 選擇。
package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"bar-assistant/internal/infrastructure/config"
	"bar-assistant/internal/pkg/common"
)

// Store 每使用者資料的持久層介面。
// 所有方法以 userID 區隔資料，不同使用者之間完全隔離。
type Store interface {
	// 庫存
	GetInventory(ctx context.Context, userID string) ([]common.InventoryItem, error)
	GetInventoryItem(ctx context.Context, userID, itemID string) (*common.InventoryItem, error)
	SaveInventoryItem(ctx context.Context, userID string, item common.InventoryItem) error
	DeleteInventoryItem(ctx context.Context, userID, itemID string) error

	// 食譜
	GetRecipes(ctx context.Context, userID string) ([]common.Recipe, error)
	GetRecipe(ctx context.Context, userID, recipeID string) (*common.Recipe, error)
	SaveRecipe(ctx context.Context, userID string, recipe common.Recipe) error
	DeleteRecipe(ctx context.Context, userID, recipeID string) error

	// 購物清單
	GetShoppingList(ctx context.Context, userID string) ([]common.ShoppingItem, error)
	AddShoppingItem(ctx context.Context, userID string, item common.ShoppingItem) error
	RemoveShoppingItem(ctx context.Context, userID, itemID string) error

	// 健康檢查與關閉
	Ping(ctx context.Context) error
	Close() error
}

// 集合讀取的回傳順序不能依賴後端的 map 或 hash 迭代順序，
// 否則相同請求會拿到順序不同的回應。兩個後端都先排序再回傳。

// sortInventory 按名稱（不分大小寫）再按 ID 排序
func sortInventory(items []common.InventoryItem) {
	sort.Slice(items, func(i, j int) bool {
		ni, nj := strings.ToLower(items[i].Name), strings.ToLower(items[j].Name)
		if ni != nj {
			return ni < nj
		}
		return items[i].ID < items[j].ID
	})
}

// sortRecipes 按名稱（不分大小寫）再按 ID 排序
func sortRecipes(recipes []common.Recipe) {
	sort.Slice(recipes, func(i, j int) bool {
		ni, nj := strings.ToLower(recipes[i].Name), strings.ToLower(recipes[j].Name)
		if ni != nj {
			return ni < nj
		}
		return recipes[i].ID < recipes[j].ID
	})
}

// New 依設定創建儲存後端
func New(cfg *config.Config) (Store, error) {
	switch cfg.Store.Backend {
	case "redis":
		return NewRedisStore(&cfg.Redis)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}
