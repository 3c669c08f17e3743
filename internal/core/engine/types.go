package engine

// Bucket 可製作性分類桶
type Bucket string

const (
	BucketCraftable Bucket = "craftable" // 缺 0 項
	BucketNearMiss  Bucket = "near_miss" // 缺 1 項
	BucketPartial   Bucket = "partial"   // 缺 2~3 項
	BucketMajorGap  Bucket = "major_gap" // 缺 4 項以上
)

// ParsedIngredient 解析後的食材行（單次計算的暫時產物）
type ParsedIngredient struct {
	Raw      string // 原始食材行
	CoreName string // 比對用名稱（小寫、去除份量單位與處理註記）
	Display  string // 顯示用名稱（保留原大小寫）
}

// MatchResult 單一食材的庫存比對結果
type MatchResult struct {
	Ingredient    string `json:"ingredient"`
	Matched       bool   `json:"matched"`
	MatchedItemID string `json:"matched_item_id,omitempty"`
}

// RecipeCraftability 單一食譜的可製作性分類結果
type RecipeCraftability struct {
	RecipeID           string   `json:"recipe_id"`
	RecipeName         string   `json:"recipe_name"`
	MissingIngredients []string `json:"missing_ingredients"`
	Bucket             Bucket   `json:"bucket"`
}

// Recommendation 缺料採購建議
type Recommendation struct {
	Ingredient      string   `json:"ingredient"`
	Unlocks         int      `json:"unlocks"`
	UnlockedRecipes []string `json:"unlocked_recipes"`
}

// Stats 整體統計
type Stats struct {
	TotalRecipes       int `json:"total_recipes"`
	Craftable          int `json:"craftable"`
	NearMisses         int `json:"near_misses"`
	Partial            int `json:"partial"`
	MajorGaps          int `json:"major_gaps"`
	InventoryItemCount int `json:"inventory_item_count"`
}

// RecipeSummary 回應中的食譜摘要
type RecipeSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// MissingIngredient 只在 near-miss 桶出現（該桶恰缺一項）
	MissingIngredient  string   `json:"missing_ingredient,omitempty"`
	MissingIngredients []string `json:"missing_ingredients,omitempty"`
}

// Report 引擎的完整輸出
type Report struct {
	Recommendations  []Recommendation `json:"recommendations"`
	Stats            Stats            `json:"stats"`
	CraftableRecipes []RecipeSummary  `json:"craftable_recipes"`
	NearMissRecipes  []RecipeSummary  `json:"near_miss_recipes"`
	PartialRecipes   []RecipeSummary  `json:"partial_recipes"`
	MajorGapRecipes  []RecipeSummary  `json:"major_gap_recipes"`
}
