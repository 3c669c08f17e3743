package engine

import (
	"bar-assistant/internal/pkg/common"
)

// ClassifyRecipe 對單一食譜套用比對器，收集缺料並指定分類桶。
// 解析為空的食材行直接略過（容忍資料輸入雜訊），不算缺料。
// 一個可解析食材都沒有的食譜依慣例視為 craftable。
func ClassifyRecipe(r common.Recipe, owned []common.InventoryItem, m *Matcher) RecipeCraftability {
	missing := make([]string, 0)
	for _, line := range r.Ingredients {
		parsed := Parse(line)
		if parsed.CoreName == "" {
			continue
		}
		if res := m.Match(parsed.CoreName, owned); !res.Matched {
			missing = append(missing, parsed.Display)
		}
	}

	return RecipeCraftability{
		RecipeID:           r.ID,
		RecipeName:         r.Name,
		MissingIngredients: missing,
		Bucket:             bucketFor(len(missing)),
	}
}

// bucketFor 缺料數對應分類桶：0 / 1 / 2~3 / 4+
func bucketFor(missingCount int) Bucket {
	switch {
	case missingCount == 0:
		return BucketCraftable
	case missingCount == 1:
		return BucketNearMiss
	case missingCount <= 3:
		return BucketPartial
	default:
		return BucketMajorGap
	}
}
