// Package bar 實作酒吧資料的業務邏輯：庫存、食譜與購物清單的管理，
// 以及 CSV 批次匯入。持久化交給 store 層，本套件負責驗證與正規化。
package bar

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"bar-assistant/internal/infrastructure/store"
	"bar-assistant/internal/pkg/common"
)

// InventoryService 庫存管理服務
type InventoryService struct {
	store store.Store
}

// NewInventoryService 創建庫存管理服務
func NewInventoryService(s store.Store) *InventoryService {
	return &InventoryService{store: s}
}

// List 列出使用者的完整庫存目錄（含庫存為 0 的品項）
func (s *InventoryService) List(ctx context.Context, userID string) ([]common.InventoryItem, error) {
	return s.store.GetInventory(ctx, userID)
}

// Get 獲取單一庫存品項
func (s *InventoryService) Get(ctx context.Context, userID, itemID string) (*common.InventoryItem, error) {
	return s.store.GetInventoryItem(ctx, userID, itemID)
}

// Create 新增庫存品項
func (s *InventoryService) Create(ctx context.Context, userID string, item common.InventoryItem) (*common.InventoryItem, error) {
	if err := validateItem(&item); err != nil {
		return nil, err
	}

	item.ID = common.GenerateUUID()
	if err := s.store.SaveInventoryItem(ctx, userID, item); err != nil {
		return nil, err
	}

	common.LogInfo("新增庫存品項",
		zap.String("user_id", userID),
		zap.String("item_id", item.ID),
		zap.String("name", item.Name))
	return &item, nil
}

// Update 更新庫存品項（含調整庫存數量）
func (s *InventoryService) Update(ctx context.Context, userID, itemID string, item common.InventoryItem) (*common.InventoryItem, error) {
	if err := validateItem(&item); err != nil {
		return nil, err
	}

	// 先確認存在
	if _, err := s.store.GetInventoryItem(ctx, userID, itemID); err != nil {
		return nil, err
	}

	item.ID = itemID
	if err := s.store.SaveInventoryItem(ctx, userID, item); err != nil {
		return nil, err
	}

	common.LogInfo("更新庫存品項",
		zap.String("user_id", userID),
		zap.String("item_id", itemID),
		zap.Int("stock_count", item.StockCount))
	return &item, nil
}

// Delete 刪除庫存品項
func (s *InventoryService) Delete(ctx context.Context, userID, itemID string) error {
	if err := s.store.DeleteInventoryItem(ctx, userID, itemID); err != nil {
		return err
	}
	common.LogInfo("刪除庫存品項",
		zap.String("user_id", userID),
		zap.String("item_id", itemID))
	return nil
}

// validateItem 驗證並正規化品項欄位
func validateItem(item *common.InventoryItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return common.NewValidationError("品項名稱不能為空")
	}
	if item.Category == "" {
		item.Category = common.CategoryOther
	}
	if !common.IsValidCategory(item.Category) {
		return common.ErrInvalidCategory
	}
	if item.StockCount < 0 {
		return common.NewValidationError("庫存數量不能為負數")
	}
	item.Type = strings.TrimSpace(item.Type)
	return nil
}
