package bar

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bar-assistant/internal/pkg/common"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "驗證錯誤回 400",
			err:        common.NewValidationError("name 為必填"),
			wantStatus: http.StatusBadRequest,
			wantCode:   common.ErrCodeInvalidRequest,
		},
		{
			name:       "業務錯誤保留自身狀態碼",
			err:        common.ErrItemNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "ITEM_NOT_FOUND",
		},
		{
			name:       "以 %w 包裝過的業務錯誤也要對到原狀態碼",
			err:        fmt.Errorf("載入庫存: %w", common.ErrItemNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "ITEM_NOT_FOUND",
		},
		{
			name:       "包裝過的驗證錯誤回 400",
			err:        fmt.Errorf("匯入失敗: %w", common.NewValidationError("第 3 行缺少欄位")),
			wantStatus: http.StatusBadRequest,
			wantCode:   common.ErrCodeInvalidRequest,
		},
		{
			name:       "未分類錯誤回 500",
			err:        fmt.Errorf("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   common.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/inventory", nil)

			respondError(c, "req-test", tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("狀態碼 = %d, 期望 %d", w.Code, tt.wantStatus)
			}
			var resp common.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("解析回應失敗: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("錯誤代碼 = %q, 期望 %q", resp.Code, tt.wantCode)
			}
		})
	}
}
