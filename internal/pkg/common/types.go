package common

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Category 庫存品項分類
type Category string

const (
	CategorySpirit  Category = "spirit"
	CategoryLiqueur Category = "liqueur"
	CategoryMixer   Category = "mixer"
	CategorySyrup   Category = "syrup"
	CategoryGarnish Category = "garnish"
	CategoryWine    Category = "wine"
	CategoryBeer    Category = "beer"
	CategoryOther   Category = "other"
)

// validCategories 合法分類白名單
var validCategories = map[Category]struct{}{
	CategorySpirit:  {},
	CategoryLiqueur: {},
	CategoryMixer:   {},
	CategorySyrup:   {},
	CategoryGarnish: {},
	CategoryWine:    {},
	CategoryBeer:    {},
	CategoryOther:   {},
}

// IsValidCategory 檢查分類是否合法
func IsValidCategory(c Category) bool {
	_, ok := validCategories[c]
	return ok
}

// InventoryItem 酒吧庫存品項（持久實體，屬於單一使用者）
type InventoryItem struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   Category `json:"category"`
	Type       string   `json:"type,omitempty"` // 子類型，自由文字（如 "London Dry"）
	StockCount int      `json:"stock_count"`
}

// InStock 是否持有；StockCount 為 0 的品項仍在目錄中，但不算持有
func (i InventoryItem) InStock() bool {
	return i.StockCount > 0
}

// Recipe 調酒食譜（持久實體，屬於單一使用者）
type Recipe struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Ingredients IngredientLines `json:"ingredients"`
}

// IngredientLines 食譜的原始食材行。
// 舊資料可能把整串食材存成單一字串，解碼時退回逗號切分。
type IngredientLines []string

// UnmarshalJSON 接受字串陣列或單一逗號分隔字串
func (l *IngredientLines) UnmarshalJSON(data []byte) error {
	var lines []string
	if err := json.Unmarshal(data, &lines); err == nil {
		*l = lines
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("ingredients must be a string array or a comma separated string")
	}

	parts := strings.Split(single, ",")
	lines = make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			lines = append(lines, s)
		}
	}
	*l = lines
	return nil
}

// ShoppingItem 購物清單項目
type ShoppingItem struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	AddedAt time.Time `json:"added_at"`
}

// FormatInventory 格式化庫存列表（組 prompt 用）
func FormatInventory(items []InventoryItem) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- %s (%s", item.Name, item.Category))
		if item.Type != "" {
			sb.WriteString("/" + item.Type)
		}
		sb.WriteString(fmt.Sprintf(")，庫存 %d\n", item.StockCount))
	}
	return sb.String()
}

// FormatRecipeNames 格式化食譜名稱列表
func FormatRecipeNames(names []string) string {
	if len(names) == 0 {
		return "（無）"
	}
	return strings.Join(names, "、")
}
