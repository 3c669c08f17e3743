package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"bar-assistant/internal/infrastructure/config"
	"bar-assistant/internal/pkg/common"
)

// 鍵格式：每位使用者一個 hash，field 為實體 ID，value 為 JSON
const (
	keyInventory = "bar:inv:%s"
	keyRecipes   = "bar:rcp:%s"
	keyShopping  = "bar:shop:%s"
)

// RedisStore Redis 後端
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 創建 Redis 後端並測試連接
func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// GetInventory 獲取使用者的完整庫存
func (s *RedisStore) GetInventory(ctx context.Context, userID string) ([]common.InventoryItem, error) {
	data, err := s.client.HGetAll(ctx, fmt.Sprintf(keyInventory, userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	items := make([]common.InventoryItem, 0, len(data))
	for id, raw := range data {
		var item common.InventoryItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			common.LogError("庫存資料反序列化失敗，略過該筆", zap.String("item_id", id), zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	sortInventory(items)
	return items, nil
}

// GetInventoryItem 獲取單一庫存品項
func (s *RedisStore) GetInventoryItem(ctx context.Context, userID, itemID string) (*common.InventoryItem, error) {
	raw, err := s.client.HGet(ctx, fmt.Sprintf(keyInventory, userID), itemID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, common.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	var item common.InventoryItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal inventory item: %w", err)
	}
	return &item, nil
}

// SaveInventoryItem 新增或覆寫庫存品項
func (s *RedisStore) SaveInventoryItem(ctx context.Context, userID string, item common.InventoryItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal inventory item: %w", err)
	}
	if err := s.client.HSet(ctx, fmt.Sprintf(keyInventory, userID), item.ID, data).Err(); err != nil {
		return fmt.Errorf("failed to save inventory item: %w", err)
	}
	return nil
}

// DeleteInventoryItem 刪除庫存品項
func (s *RedisStore) DeleteInventoryItem(ctx context.Context, userID, itemID string) error {
	n, err := s.client.HDel(ctx, fmt.Sprintf(keyInventory, userID), itemID).Result()
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	if n == 0 {
		return common.ErrItemNotFound
	}
	return nil
}

// GetRecipes 獲取使用者的完整食譜集合
func (s *RedisStore) GetRecipes(ctx context.Context, userID string) ([]common.Recipe, error) {
	data, err := s.client.HGetAll(ctx, fmt.Sprintf(keyRecipes, userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recipes: %w", err)
	}

	recipes := make([]common.Recipe, 0, len(data))
	for id, raw := range data {
		var recipe common.Recipe
		if err := json.Unmarshal([]byte(raw), &recipe); err != nil {
			common.LogError("食譜資料反序列化失敗，略過該筆", zap.String("recipe_id", id), zap.Error(err))
			continue
		}
		recipes = append(recipes, recipe)
	}
	sortRecipes(recipes)
	return recipes, nil
}

// GetRecipe 獲取單一食譜
func (s *RedisStore) GetRecipe(ctx context.Context, userID, recipeID string) (*common.Recipe, error) {
	raw, err := s.client.HGet(ctx, fmt.Sprintf(keyRecipes, userID), recipeID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, common.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	var recipe common.Recipe
	if err := json.Unmarshal([]byte(raw), &recipe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe: %w", err)
	}
	return &recipe, nil
}

// SaveRecipe 新增或覆寫食譜
func (s *RedisStore) SaveRecipe(ctx context.Context, userID string, recipe common.Recipe) error {
	data, err := json.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe: %w", err)
	}
	if err := s.client.HSet(ctx, fmt.Sprintf(keyRecipes, userID), recipe.ID, data).Err(); err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	return nil
}

// DeleteRecipe 刪除食譜
func (s *RedisStore) DeleteRecipe(ctx context.Context, userID, recipeID string) error {
	n, err := s.client.HDel(ctx, fmt.Sprintf(keyRecipes, userID), recipeID).Result()
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if n == 0 {
		return common.ErrRecipeNotFound
	}
	return nil
}

// GetShoppingList 獲取購物清單
func (s *RedisStore) GetShoppingList(ctx context.Context, userID string) ([]common.ShoppingItem, error) {
	data, err := s.client.HGetAll(ctx, fmt.Sprintf(keyShopping, userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping list: %w", err)
	}

	items := make([]common.ShoppingItem, 0, len(data))
	for id, raw := range data {
		var item common.ShoppingItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			common.LogError("購物清單資料反序列化失敗，略過該筆", zap.String("item_id", id), zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// AddShoppingItem 加入購物清單
func (s *RedisStore) AddShoppingItem(ctx context.Context, userID string, item common.ShoppingItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal shopping item: %w", err)
	}
	if err := s.client.HSet(ctx, fmt.Sprintf(keyShopping, userID), item.ID, data).Err(); err != nil {
		return fmt.Errorf("failed to add shopping item: %w", err)
	}
	return nil
}

// RemoveShoppingItem 從購物清單移除
func (s *RedisStore) RemoveShoppingItem(ctx context.Context, userID, itemID string) error {
	n, err := s.client.HDel(ctx, fmt.Sprintf(keyShopping, userID), itemID).Result()
	if err != nil {
		return fmt.Errorf("failed to remove shopping item: %w", err)
	}
	if n == 0 {
		return common.ErrItemNotFound
	}
	return nil
}

// Ping 健康檢查
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close 關閉連接
func (s *RedisStore) Close() error {
	return s.client.Close()
}
