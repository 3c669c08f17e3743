package assistant

import (
	"fmt"
	"strings"

	"bar-assistant/internal/core/engine"
	"bar-assistant/internal/pkg/common"
)

// buildChatPrompt 組合聊天 prompt：使用者的問題加上酒吧現況
// （庫存目錄與可製作性報告摘要）。
func buildChatPrompt(question string, inventory []common.InventoryItem, report *engine.Report) string {
	var sb strings.Builder

	sb.WriteString("你是家庭酒吧助理。請根據以下酒吧現況回答問題（用繁體中文回答）。\n\n")

	sb.WriteString("庫存目錄：\n")
	if len(inventory) == 0 {
		sb.WriteString("（目前沒有任何品項）\n")
	} else {
		sb.WriteString(common.FormatInventory(inventory))
	}

	sb.WriteString("\n現在就能調的酒：")
	sb.WriteString(common.FormatRecipeNames(recipeNames(report.CraftableRecipes)))
	sb.WriteString("\n只差一樣材料的酒：")
	sb.WriteString(common.FormatRecipeNames(recipeNames(report.NearMissRecipes)))

	if len(report.Recommendations) > 0 {
		sb.WriteString("\n\n採購建議（按解鎖數排序）：\n")
		for _, rec := range report.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s：可解鎖 %d 份食譜（%s）\n",
				rec.Ingredient, rec.Unlocks, common.FormatRecipeNames(rec.UnlockedRecipes)))
		}
	}

	sb.WriteString("\n問題：")
	sb.WriteString(strings.TrimSpace(question))
	sb.WriteString("\n\n要求：\n")
	sb.WriteString("1. 只根據上述現況回答，不要假設庫存中沒有的材料\n")
	sb.WriteString("2. 回答要具體，提到食譜時使用上面列出的名稱\n")
	sb.WriteString(`3. 回傳單一 JSON 物件：{"answer": "...", "suggested_recipes": ["..."]}` + "\n")
	sb.WriteString("4. suggested_recipes 只能包含上面出現過的食譜名稱，沒有就給空陣列\n")

	return sb.String()
}

func recipeNames(summaries []engine.RecipeSummary) []string {
	names := make([]string, 0, len(summaries))
	for _, s := range summaries {
		names = append(names, s.Name)
	}
	return names
}
