package bar

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bar-assistant/internal/api/middleware"
	"bar-assistant/internal/core/bar"
	"bar-assistant/internal/pkg/common"
)

// RecipeHandler 食譜處理程序
type RecipeHandler struct {
	service *bar.RecipeService
}

// NewRecipeHandler 創建食譜處理程序
func NewRecipeHandler(s *bar.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: s}
}

// List GET /recipes
func (h *RecipeHandler) List(c *gin.Context) {
	requestID := ensureRequestID(c)
	userID := middleware.UserID(c)

	recipes, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes, "count": len(recipes)})
}

// Create POST /recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	requestID := ensureRequestID(c)
	userID := middleware.UserID(c)

	var recipe common.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "無效的請求",
		})
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, recipe)
	if err != nil {
		respondError(c, requestID, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update PUT /recipes/:id
func (h *RecipeHandler) Update(c *gin.Context) {
	requestID := ensureRequestID(c)
	userID := middleware.UserID(c)

	var recipe common.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "無效的請求",
		})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), userID, c.Param("id"), recipe)
	if err != nil {
		respondError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete DELETE /recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	requestID := ensureRequestID(c)
	userID := middleware.UserID(c)

	if err := h.service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, requestID, err)
		return
	}
	c.Status(http.StatusNoContent)
}
