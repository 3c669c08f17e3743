package bar

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bar-assistant/internal/api/middleware"
	"bar-assistant/internal/core/bar"
	"bar-assistant/internal/pkg/common"
)

// ShoppingHandler 購物清單處理程序
type ShoppingHandler struct {
	service *bar.ShoppingService
}

// NewShoppingHandler 創建購物清單處理程序
func NewShoppingHandler(s *bar.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{service: s}
}

// addShoppingRequest 加入購物清單的請求
type addShoppingRequest struct {
	Name string `json:"name" binding:"required"`
}

// List GET /shopping-list
func (h *ShoppingHandler) List(c *gin.Context) {
	requestID := ensureRequestID(c)
	userID := middleware.UserID(c)

	items, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// Add POST /shopping-list
func (h *ShoppingHandler) Add(c *gin.Context) {
	requestID := ensureRequestID(c)
	userID := middleware.UserID(c)

	var req addShoppingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "無效的請求",
		})
		return
	}

	item, err := h.service.Add(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondError(c, requestID, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Remove DELETE /shopping-list/:id
func (h *ShoppingHandler) Remove(c *gin.Context) {
	requestID := ensureRequestID(c)
	userID := middleware.UserID(c)

	if err := h.service.Remove(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, requestID, err)
		return
	}
	c.Status(http.StatusNoContent)
}
