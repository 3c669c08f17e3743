package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bar-assistant/internal/pkg/common"
)

// ContextUserID gin context 中的使用者鍵
const ContextUserID = "user_id"

// headerUserID 身份由外部的 session 層解析後放在這個 header
const headerUserID = "X-User-ID"

// Auth 使用者身份中間件。沒有 X-User-ID 的請求一律 401。
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(headerUserID))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing user identity",
				"code":  common.ErrCodeUnauthorized,
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID 從 context 取出已驗證的使用者 ID
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
