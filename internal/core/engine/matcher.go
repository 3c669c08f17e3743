package engine

import (
	"strings"

	"bar-assistant/internal/pkg/common"

	"github.com/agnivade/levenshtein"
)

// 單字相似度門檻：兩個關鍵字視為同一個字的最低 Levenshtein 相似度
const wordSimilarityFloor = 0.8

// 預設停用詞：比對時不具鑑別力的字。
// dry/sweet 是風格描述詞，留著會讓 "dry vermouth" 誤中 "London Dry Gin"。
var defaultStopWords = map[string]struct{}{
	"fresh": {}, "juice": {}, "syrup": {},
	"dry": {}, "sweet": {},
	"of": {}, "the": {}, "a": {}, "an": {}, "and": {}, "with": {},
}

// Matcher 庫存比對器。Threshold 為關鍵字重疊比例門檻（0~1）。
type Matcher struct {
	Threshold float64
	stopWords map[string]struct{}
}

// NewMatcher 創建比對器，extraStopWords 來自設定
func NewMatcher(threshold float64, extraStopWords []string) *Matcher {
	stop := make(map[string]struct{}, len(defaultStopWords)+len(extraStopWords))
	for w := range defaultStopWords {
		stop[w] = struct{}{}
	}
	for _, w := range extraStopWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			stop[w] = struct{}{}
		}
	}
	return &Matcher{
		Threshold: threshold,
		stopWords: stop,
	}
}

// Match 判斷核心名稱是否被持有庫存滿足。
// 規則依序評估，先中先贏：
//  1. 名稱完全相等（不分大小寫）
//  2. 雙向子字串包含
//  3. 關鍵字集合重疊比例達門檻
//
// 全函數、無副作用；下游只用到 Matched 布林值，先中的品項即為結果。
func (m *Matcher) Match(coreName string, owned []common.InventoryItem) MatchResult {
	result := MatchResult{Ingredient: coreName}
	if coreName == "" {
		return result
	}

	// 規則 1：完全相等
	for _, item := range owned {
		if strings.EqualFold(coreName, item.Name) {
			result.Matched = true
			result.MatchedItemID = item.ID
			return result
		}
	}

	// 規則 2：雙向子字串包含
	lowered := strings.ToLower(coreName)
	for _, item := range owned {
		itemName := strings.ToLower(item.Name)
		if itemName == "" {
			continue
		}
		if strings.Contains(itemName, lowered) || strings.Contains(lowered, itemName) {
			result.Matched = true
			result.MatchedItemID = item.ID
			return result
		}
	}

	// 規則 3：關鍵字集合重疊
	coreWords := m.keywords(lowered)
	if len(coreWords) == 0 {
		return result
	}
	for _, item := range owned {
		itemWords := m.keywords(strings.ToLower(item.Name + " " + item.Type))
		if len(itemWords) == 0 {
			continue
		}
		if m.overlapRatio(coreWords, itemWords) >= m.Threshold {
			result.Matched = true
			result.MatchedItemID = item.ID
			return result
		}
	}

	return result
}

// keywords 取出有鑑別力的字；若停用詞濾掉後集合變空，退回未過濾的字
// （停用詞只在不至於清空比較基礎時剔除）
func (m *Matcher) keywords(s string) []string {
	words := strings.Fields(s)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := m.stopWords[w]; stop {
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		return words
	}
	return kept
}

// overlapRatio 計算核心名稱關鍵字被品項關鍵字覆蓋的比例
func (m *Matcher) overlapRatio(coreWords, itemWords []string) float64 {
	matched := 0
	for _, cw := range coreWords {
		for _, iw := range itemWords {
			if wordsEqual(cw, iw) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(coreWords))
}

// wordsEqual 兩個字相同，或 Levenshtein 相似度達下限
func wordsEqual(a, b string) bool {
	if a == b {
		return true
	}
	return similarity(a, b) >= wordSimilarityFloor
}

// similarity 以 Levenshtein 距離換算 0~1 相似度：1 - dist/max(len)
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}
