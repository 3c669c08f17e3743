package bar

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bar-assistant/internal/api/middleware"
	"bar-assistant/internal/core/assistant"
	"bar-assistant/internal/pkg/common"
)

// AssistantHandler 助理處理程序：可製作性分析與聊天
type AssistantHandler struct {
	service *assistant.Service
}

// NewAssistantHandler 創建助理處理程序
func NewAssistantHandler(s *assistant.Service) *AssistantHandler {
	return &AssistantHandler{service: s}
}

// Craftable GET /assistant/craftable
func (h *AssistantHandler) Craftable(c *gin.Context) {
	requestID := ensureRequestID(c)
	userID := middleware.UserID(c)

	common.LogInfo("開始可製作性分析",
		zap.String("request_id", requestID),
		zap.String("user_id", userID),
	)

	report, err := h.service.Analyze(c.Request.Context(), userID)
	if err != nil {
		respondError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Chat POST /assistant/chat
func (h *AssistantHandler) Chat(c *gin.Context) {
	requestID := ensureRequestID(c)
	userID := middleware.UserID(c)

	var req assistant.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("聊天請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "無效的請求",
		})
		return
	}

	resp, err := h.service.Chat(c.Request.Context(), userID, requestID, &req)
	if err != nil {
		respondError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
