package engine

import (
	"sort"
	"strings"
)

// Recommend 掃描 near-miss 桶，按缺的那一項分組統計解鎖數。
// 分組鍵為核心名稱（不分大小寫），顯示名稱取該組第一次出現的形式。
// 排序：解鎖數遞減，同數則名稱遞增，輸出對相同輸入完全可重現。
func Recommend(nearMiss []RecipeCraftability) []Recommendation {
	type group struct {
		display string
		recipes []string
	}

	groups := make(map[string]*group)
	order := make([]string, 0)
	for _, c := range nearMiss {
		if len(c.MissingIngredients) != 1 {
			continue
		}
		display := c.MissingIngredients[0]
		key := strings.ToLower(display)
		g, ok := groups[key]
		if !ok {
			g = &group{display: display}
			groups[key] = g
			order = append(order, key)
		}
		g.recipes = append(g.recipes, c.RecipeName)
	}

	recs := make([]Recommendation, 0, len(groups))
	for _, key := range order {
		g := groups[key]
		recs = append(recs, Recommendation{
			Ingredient:      g.display,
			Unlocks:         len(g.recipes),
			UnlockedRecipes: g.recipes,
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Unlocks != recs[j].Unlocks {
			return recs[i].Unlocks > recs[j].Unlocks
		}
		return strings.ToLower(recs[i].Ingredient) < strings.ToLower(recs[j].Ingredient)
	})

	return recs
}
