// Package health 提供健康檢查端點。
package health

import (
	"net/http"
	"runtime"
	"time"

	"bar-assistant/internal/infrastructure/config"
	"bar-assistant/internal/infrastructure/store"
	"bar-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Store     *StoreStatus           `json:"store,omitempty"`
	Cache     map[string]interface{} `json:"cache,omitempty"`
}

// StoreStatus 儲存層狀態
type StoreStatus struct {
	Backend   string `json:"backend"`
	Reachable bool   `json:"reachable"`
}

// HealthCheck 健康檢查處理器
func HealthCheck(c *gin.Context) {
	cfg, ok := configFromContext(c)
	if !ok {
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   cfg.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	if st, exists := c.Get("store"); exists {
		if s, okCast := st.(store.Store); okCast {
			status := &StoreStatus{Backend: cfg.Store.Backend, Reachable: true}
			if err := s.Ping(c.Request.Context()); err != nil {
				status.Reachable = false
				response.Status = "degraded"
				common.LogWarn("儲存層健康檢查失敗", zap.Error(err))
			}
			response.Store = status
		}
	}

	if stats, exists := c.Get("cache_stats"); exists {
		if m, okCast := stats.(map[string]interface{}); okCast {
			response.Cache = m
		}
	}

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查：儲存層可達才算就緒
func ReadinessCheck(c *gin.Context) {
	st, exists := c.Get("store")
	if !exists {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	s, ok := st.(store.Store)
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}

	if err := s.Ping(c.Request.Context()); err != nil {
		common.LogWarn("就緒檢查失敗", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"code":   common.ErrCodeServiceUnavailable,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// LivenessCheck 存活檢查
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"timestamp": time.Now(),
	})
}

// configFromContext 從 gin context 取出配置
func configFromContext(c *gin.Context) (*config.Config, bool) {
	v, exists := c.Get("config")
	if !exists {
		common.LogError("Context 中找不到配置")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Configuration not found"})
		return nil, false
	}
	cfg, ok := v.(*config.Config)
	if !ok {
		common.LogError("Context 中的配置型別錯誤")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid configuration type"})
		return nil, false
	}
	return cfg, true
}
