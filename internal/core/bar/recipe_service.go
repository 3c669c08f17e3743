package bar

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"bar-assistant/internal/infrastructure/store"
	"bar-assistant/internal/pkg/common"
)

// RecipeService 食譜管理服務
type RecipeService struct {
	store store.Store
}

// NewRecipeService 創建食譜管理服務
func NewRecipeService(s store.Store) *RecipeService {
	return &RecipeService{store: s}
}

// List 列出使用者的完整食譜集合
func (s *RecipeService) List(ctx context.Context, userID string) ([]common.Recipe, error) {
	return s.store.GetRecipes(ctx, userID)
}

// Get 獲取單一食譜
func (s *RecipeService) Get(ctx context.Context, userID, recipeID string) (*common.Recipe, error) {
	return s.store.GetRecipe(ctx, userID, recipeID)
}

// Create 新增食譜。食材行原樣保存，解析在分析時才進行。
func (s *RecipeService) Create(ctx context.Context, userID string, recipe common.Recipe) (*common.Recipe, error) {
	if err := validateRecipe(&recipe); err != nil {
		return nil, err
	}

	recipe.ID = common.GenerateUUID()
	if err := s.store.SaveRecipe(ctx, userID, recipe); err != nil {
		return nil, err
	}

	common.LogInfo("新增食譜",
		zap.String("user_id", userID),
		zap.String("recipe_id", recipe.ID),
		zap.String("name", recipe.Name),
		zap.Int("ingredient_lines", len(recipe.Ingredients)))
	return &recipe, nil
}

// Update 更新食譜
func (s *RecipeService) Update(ctx context.Context, userID, recipeID string, recipe common.Recipe) (*common.Recipe, error) {
	if err := validateRecipe(&recipe); err != nil {
		return nil, err
	}

	if _, err := s.store.GetRecipe(ctx, userID, recipeID); err != nil {
		return nil, err
	}

	recipe.ID = recipeID
	if err := s.store.SaveRecipe(ctx, userID, recipe); err != nil {
		return nil, err
	}

	common.LogInfo("更新食譜",
		zap.String("user_id", userID),
		zap.String("recipe_id", recipeID))
	return &recipe, nil
}

// Delete 刪除食譜
func (s *RecipeService) Delete(ctx context.Context, userID, recipeID string) error {
	if err := s.store.DeleteRecipe(ctx, userID, recipeID); err != nil {
		return err
	}
	common.LogInfo("刪除食譜",
		zap.String("user_id", userID),
		zap.String("recipe_id", recipeID))
	return nil
}

// validateRecipe 驗證食譜欄位。
// 空的食材行允許存在，分析時按慣例視為可製作。
func validateRecipe(recipe *common.Recipe) error {
	recipe.Name = strings.TrimSpace(recipe.Name)
	if recipe.Name == "" {
		return common.NewValidationError("食譜名稱不能為空")
	}

	lines := make(common.IngredientLines, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
		}
	}
	recipe.Ingredients = lines
	return nil
}
