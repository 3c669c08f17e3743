package bar

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bar-assistant/internal/api/middleware"
	"bar-assistant/internal/core/bar"
	"bar-assistant/internal/pkg/common"
)

// InventoryHandler 庫存處理程序
type InventoryHandler struct {
	service *bar.InventoryService
}

// NewInventoryHandler 創建庫存處理程序
func NewInventoryHandler(s *bar.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// List GET /inventory
func (h *InventoryHandler) List(c *gin.Context) {
	requestID := ensureRequestID(c)
	userID := middleware.UserID(c)

	items, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// Create POST /inventory
func (h *InventoryHandler) Create(c *gin.Context) {
	requestID := ensureRequestID(c)
	userID := middleware.UserID(c)

	var item common.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		common.LogWarn("庫存請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "無效的請求",
		})
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, item)
	if err != nil {
		respondError(c, requestID, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update PUT /inventory/:id
func (h *InventoryHandler) Update(c *gin.Context) {
	requestID := ensureRequestID(c)
	userID := middleware.UserID(c)

	var item common.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "無效的請求",
		})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), userID, c.Param("id"), item)
	if err != nil {
		respondError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete DELETE /inventory/:id
func (h *InventoryHandler) Delete(c *gin.Context) {
	requestID := ensureRequestID(c)
	userID := middleware.UserID(c)

	if err := h.service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, requestID, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Import POST /inventory/import，請求體為 CSV
func (h *InventoryHandler) Import(c *gin.Context) {
	requestID := ensureRequestID(c)
	userID := middleware.UserID(c)

	common.LogInfo("開始處理 CSV 匯入",
		zap.String("request_id", requestID),
		zap.String("user_id", userID),
	)

	result, err := h.service.ImportCSV(c.Request.Context(), userID, c.Request.Body)
	if err != nil {
		respondError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
