package bar

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"bar-assistant/internal/infrastructure/store"
	"bar-assistant/internal/pkg/common"
)

// ShoppingService 購物清單服務
type ShoppingService struct {
	store store.Store
}

// NewShoppingService 創建購物清單服務
func NewShoppingService(s store.Store) *ShoppingService {
	return &ShoppingService{store: s}
}

// List 列出購物清單，按加入時間排序
func (s *ShoppingService) List(ctx context.Context, userID string) ([]common.ShoppingItem, error) {
	items, err := s.store.GetShoppingList(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].AddedAt.Before(items[j].AddedAt)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// Add 加入購物清單。同名（不分大小寫）已存在時直接回傳現有項目。
func (s *ShoppingService) Add(ctx context.Context, userID, name string) (*common.ShoppingItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.NewValidationError("品項名稱不能為空")
	}

	existing, err := s.store.GetShoppingList(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, item := range existing {
		if strings.EqualFold(item.Name, name) {
			return &item, nil
		}
	}

	item := common.ShoppingItem{
		ID:      common.GenerateUUID(),
		Name:    name,
		AddedAt: time.Now().UTC(),
	}
	if err := s.store.AddShoppingItem(ctx, userID, item); err != nil {
		return nil, err
	}

	common.LogInfo("加入購物清單",
		zap.String("user_id", userID),
		zap.String("item_id", item.ID),
		zap.String("name", name))
	return &item, nil
}

// Remove 從購物清單移除
func (s *ShoppingService) Remove(ctx context.Context, userID, itemID string) error {
	if err := s.store.RemoveShoppingItem(ctx, userID, itemID); err != nil {
		return err
	}
	common.LogInfo("從購物清單移除",
		zap.String("user_id", userID),
		zap.String("item_id", itemID))
	return nil
}
