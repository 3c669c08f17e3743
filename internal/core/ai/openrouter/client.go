// Package openrouter 封裝 OpenRouter 聊天補全 API 的客戶端。
package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"bar-assistant/internal/infrastructure/config"
	"bar-assistant/internal/pkg/common"
)

const baseURL = "https://openrouter.ai/api/v1"

// Client OpenRouter API 客戶端
type Client struct {
	config *config.Config
	client *resty.Client
}

// Message 消息結構
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request 表示 API 請求
type Request struct {
	Model       string    `json:"model,omitempty"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

// UsageInfo 使用量信息
type UsageInfo struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response OpenRouter 響應結構
type Response struct {
	ID      string `json:"id"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Usage UsageInfo `json:"usage"`
}

// NewClient 創建新的 OpenRouter 客戶端
func NewClient(cfg *config.Config) *Client {
	timeout := cfg.OpenRouter.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.OpenRouter.APIKey)).
		SetHeader("HTTP-Referer", "https://bar-assistant.app").
		SetHeader("X-Title", "Bar Assistant")

	return &Client{
		config: cfg,
		client: client,
	}
}

// Generate 發送 prompt 並回傳模型的文字回應
func (c *Client) Generate(ctx context.Context, prompt, requestID string) (string, error) {
	req := &Request{
		Model: c.config.OpenRouter.Model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   c.config.OpenRouter.MaxTokens,
		Temperature: 0.7,
	}

	common.LogDebug("發送 OpenRouter 請求",
		zap.String("model", req.Model),
		zap.String("request_id", requestID),
		zap.Int("prompt_length", len(prompt)))

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	common.LogAICall(time.Since(start), err, requestID)

	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogError("OpenRouter 回傳錯誤狀態",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", req.Model),
			zap.String("request_id", requestID))
		return "", fmt.Errorf("OpenRouter API returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var response Response
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return "", fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenRouter response")
	}

	content := response.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty content in OpenRouter response")
	}

	common.LogInfo("OpenRouter 回應成功",
		zap.String("model", req.Model),
		zap.String("request_id", requestID),
		zap.Int("content_length", len(content)),
		zap.Int("total_tokens", response.Usage.TotalTokens))
	return content, nil
}

// Close 關閉客戶端
func (c *Client) Close() error {
	// resty 底層連線池交給 GC
	return nil
}
