// Package assistant 實作帶酒吧現況脈絡的聊天助理：
// 把庫存與可製作性報告嵌進 prompt，透過 OpenRouter 取得回答。
package assistant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"bar-assistant/internal/core/ai/cache"
	"bar-assistant/internal/core/ai/openrouter"
	"bar-assistant/internal/core/engine"
	"bar-assistant/internal/infrastructure/store"
	"bar-assistant/internal/pkg/common"
)

// ChatRequest 聊天請求
type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}

// ChatResponse 聊天回應
type ChatResponse struct {
	Answer           string   `json:"answer"`
	SuggestedRecipes []string `json:"suggested_recipes"`
	CacheHit         bool     `json:"cache_hit,omitempty"`
}

// Service 聊天助理服務
type Service struct {
	store        store.Store
	engine       *engine.Engine
	aiClient     *openrouter.Client
	cacheManager *cache.CacheManager
}

// NewService 創建聊天助理服務。cacheManager 可為 nil（緩存停用）。
func NewService(s store.Store, e *engine.Engine, client *openrouter.Client, cm *cache.CacheManager) *Service {
	return &Service{
		store:        s,
		engine:       e,
		aiClient:     client,
		cacheManager: cm,
	}
}

// Analyze 對使用者的庫存與食譜執行可製作性分析
func (s *Service) Analyze(ctx context.Context, userID string) (*engine.Report, error) {
	inventory, err := s.store.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	recipes, err := s.store.GetRecipes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}

	report := s.engine.Analyze(inventory, recipes)

	common.LogInfo("可製作性分析完成",
		zap.String("user_id", userID),
		zap.Int("total_recipes", report.Stats.TotalRecipes),
		zap.Int("craftable", report.Stats.Craftable),
		zap.Int("near_misses", report.Stats.NearMisses),
		zap.Int("recommendations", len(report.Recommendations)))
	return report, nil
}

// Chat 回答帶酒吧現況的問題
func (s *Service) Chat(ctx context.Context, userID, requestID string, req *ChatRequest) (*ChatResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, common.NewValidationError("問題不能為空")
	}
	if s.aiClient == nil {
		return nil, common.ErrAIServiceError
	}

	inventory, err := s.store.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	recipes, err := s.store.GetRecipes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}

	report := s.engine.Analyze(inventory, recipes)
	prompt := buildChatPrompt(question, inventory, report)

	// 緩存鍵包含完整 prompt，庫存或食譜變動時自然失效
	if cached, err := s.cacheManager.Get(ctx, prompt); err == nil {
		resp, perr := parseChatResponse(cached)
		if perr == nil {
			resp.CacheHit = true
			return resp, nil
		}
	}

	raw, err := s.aiClient.Generate(ctx, prompt, requestID)
	if err != nil {
		common.LogError("聊天助理 AI 調用失敗",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("request_id", requestID))
		return nil, common.ErrAIServiceError
	}

	resp, err := parseChatResponse(raw)
	if err != nil {
		common.LogWarn("AI 回應非預期格式，原樣回傳",
			zap.String("request_id", requestID),
			zap.Error(err))
		// 模型沒給 JSON 時，整段文字當作回答
		resp = &ChatResponse{Answer: strings.TrimSpace(raw), SuggestedRecipes: []string{}}
	}

	if err := s.cacheManager.Set(ctx, prompt, raw); err != nil && err != common.ErrCacheFull {
		common.LogWarn("快取寫入失敗", zap.Error(err))
	}
	return resp, nil
}

// parseChatResponse 從模型輸出抽出 JSON 並解析
func parseChatResponse(raw string) (*ChatResponse, error) {
	jsonStr := common.ExtractJSONObject(raw)
	if jsonStr == "" {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var resp ChatResponse
	if err := common.ParseJSON(jsonStr, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse chat response: %w", err)
	}
	if strings.TrimSpace(resp.Answer) == "" {
		return nil, fmt.Errorf("empty answer in chat response")
	}
	if resp.SuggestedRecipes == nil {
		resp.SuggestedRecipes = []string{}
	}
	return &resp, nil
}
