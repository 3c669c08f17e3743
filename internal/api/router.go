// Package api 組裝 HTTP 路由與中間件。
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	barHandler "bar-assistant/internal/api/handlers/bar"
	"bar-assistant/internal/api/handlers/health"
	"bar-assistant/internal/api/middleware"
	"bar-assistant/internal/core/ai/cache"
	"bar-assistant/internal/core/ai/openrouter"
	"bar-assistant/internal/core/assistant"
	barService "bar-assistant/internal/core/bar"
	"bar-assistant/internal/core/engine"
	"bar-assistant/internal/infrastructure/config"
	"bar-assistant/internal/infrastructure/store"
	"bar-assistant/internal/pkg/common"
)

const (
	// 請求超時
	timeoutDuration = 60 * time.Second
	// 請求體大小限制 (2MB)，CSV 匯入也在這之內
	maxBodySize = 2 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, st store.Store, cacheManager *cache.CacheManager) (*gin.Engine, error) {
	common.LogInfo("開始設置路由",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.String("store_backend", cfg.Store.Backend),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 初始化服務
	eng := engine.New(cfg)
	inventorySvc := barService.NewInventoryService(st)
	recipeSvc := barService.NewRecipeService(st)
	shoppingSvc := barService.NewShoppingService(st)

	var aiClient *openrouter.Client
	if cfg.OpenRouter.Enabled {
		aiClient = openrouter.NewClient(cfg)
	}
	assistantSvc := assistant.NewService(st, eng, aiClient, cacheManager)

	common.LogInfo("服務初始化完成",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("ai_enabled", cfg.OpenRouter.Enabled),
		zap.Float64("match_threshold", cfg.Engine.MatchThreshold),
	)

	// 全局中間件：超時與 context 注入
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("store", st)
		c.Set("cache_stats", cacheManager.GetStats())

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("請求超時",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
			})
		}
	})

	// 健康檢查路由（不需要使用者身份）
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組：身份、去重、限流
	api := router.Group("/api/v1")
	api.Use(middleware.Auth())
	api.Use(middleware.Deduplication(cfg))
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	{
		assistantH := barHandler.NewAssistantHandler(assistantSvc)
		assistantGroup := api.Group("/assistant")
		{
			assistantGroup.GET("/craftable", assistantH.Craftable)
			assistantGroup.POST("/chat", assistantH.Chat)
		}

		inventoryH := barHandler.NewInventoryHandler(inventorySvc)
		inventoryGroup := api.Group("/inventory")
		{
			inventoryGroup.GET("", inventoryH.List)
			inventoryGroup.POST("", inventoryH.Create)
			inventoryGroup.PUT("/:id", inventoryH.Update)
			inventoryGroup.DELETE("/:id", inventoryH.Delete)
			inventoryGroup.POST("/import", inventoryH.Import)
		}

		recipeH := barHandler.NewRecipeHandler(recipeSvc)
		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.GET("", recipeH.List)
			recipeGroup.POST("", recipeH.Create)
			recipeGroup.PUT("/:id", recipeH.Update)
			recipeGroup.DELETE("/:id", recipeH.Delete)
		}

		shoppingH := barHandler.NewShoppingHandler(shoppingSvc)
		shoppingGroup := api.Group("/shopping-list")
		{
			shoppingGroup.GET("", shoppingH.List)
			shoppingGroup.POST("", shoppingH.Add)
			shoppingGroup.DELETE("/:id", shoppingH.Remove)
		}
	}

	common.LogInfo("路由設置完成",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
