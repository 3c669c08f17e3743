// Package engine 實作可製作性與缺料推薦引擎：
// 解析食材行 → 庫存比對 → 食譜分桶 → 採購建議排名。
// 純計算、無狀態，每次請求重新計算，不寫入任何持久資料。
package engine

import (
	"bar-assistant/internal/infrastructure/config"
	"bar-assistant/internal/pkg/common"
)

// Engine 可製作性引擎
type Engine struct {
	matcher *Matcher
}

// New 依設定創建引擎
func New(cfg *config.Config) *Engine {
	return &Engine{
		matcher: NewMatcher(cfg.Engine.MatchThreshold, cfg.Engine.ExtraStopWords),
	}
}

// NewWithMatcher 用現成比對器創建引擎（測試用途）
func NewWithMatcher(m *Matcher) *Engine {
	return &Engine{matcher: m}
}

// Analyze 對一位使用者的完整庫存與食譜集合執行整條管線。
// 讀入即快照；五個階段循序執行，不同使用者的呼叫可並行。
func (e *Engine) Analyze(inventory []common.InventoryItem, recipes []common.Recipe) *Report {
	// 零庫存品項存在目錄中，但不算持有
	owned := make([]common.InventoryItem, 0, len(inventory))
	for _, item := range inventory {
		if item.InStock() {
			owned = append(owned, item)
		}
	}

	classifications := make([]RecipeCraftability, 0, len(recipes))
	for _, r := range recipes {
		classifications = append(classifications, ClassifyRecipe(r, owned, e.matcher))
	}

	buckets := Aggregate(classifications)
	recommendations := Recommend(buckets.NearMiss)

	return &Report{
		Recommendations: recommendations,
		Stats: Stats{
			TotalRecipes:       buckets.Total(),
			Craftable:          len(buckets.Craftable),
			NearMisses:         len(buckets.NearMiss),
			Partial:            len(buckets.Partial),
			MajorGaps:          len(buckets.MajorGap),
			InventoryItemCount: len(inventory),
		},
		CraftableRecipes: summarize(buckets.Craftable),
		NearMissRecipes:  summarize(buckets.NearMiss),
		PartialRecipes:   summarize(buckets.Partial),
		MajorGapRecipes:  summarize(buckets.MajorGap),
	}
}

// summarize 轉成回應用的摘要；near-miss 桶額外標出缺的那一項
func summarize(classifications []RecipeCraftability) []RecipeSummary {
	summaries := make([]RecipeSummary, 0, len(classifications))
	for _, c := range classifications {
		s := RecipeSummary{
			ID:   c.RecipeID,
			Name: c.RecipeName,
		}
		if len(c.MissingIngredients) > 0 {
			s.MissingIngredients = c.MissingIngredients
		}
		if c.Bucket == BucketNearMiss && len(c.MissingIngredients) == 1 {
			s.MissingIngredient = c.MissingIngredients[0]
		}
		summaries = append(summaries, s)
	}
	return summaries
}
