package router

import (
	"time"

	authhandler "rivalradar_backend/internal/feature/auth/transport/handler"
	comparisonhandler "rivalradar_backend/internal/feature/comparison/transport/handler"
	competitorshandler "rivalradar_backend/internal/feature/competitors/transport/handler"
	"rivalradar_backend/internal/platform/http/handler"
	"rivalradar_backend/internal/platform/http/middleware"
	jwtmw "rivalradar_backend/internal/platform/jwt"
	"rivalradar_backend/internal/platform/metrics"

	"github.com/gin-gonic/gin"
)

const readinessTimeout = 2 * time.Second

// Handlers はルーターに登録するハンドラー一式です。
type Handlers struct {
	Auth        *authhandler.AuthHandler
	Competitors *competitorshandler.CompetitorHandler
	Analyses    *competitorshandler.AnalysisHandler
	Identify    *competitorshandler.IdentifyHandler
	Comparison  *comparisonhandler.ComparisonHandler
}

func NewRouter(h Handlers, m *metrics.Metrics, checks ...handler.Check) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID(), m.Middleware())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	// 依存サービスの疎通確認
	r.GET("/readyz", handler.Ready(readinessTimeout, checks...))
	r.GET("/metrics", gin.WrapH(m.Handler()))
	// 新規ユーザー登録
	r.POST("/signup", h.Auth.Signup)
	// ログイン（アクセストークンとリフレッシュトークンを発行）
	r.POST("/login", h.Auth.Login)
	r.POST("/refresh", h.Auth.Refresh)
	r.POST("/logout", h.Auth.Logout)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		competitors := auth.Group("/competitors")
		competitors.GET("", h.Competitors.List)
		competitors.POST("", h.Competitors.Create)
		competitors.GET("/market_overview", h.Competitors.MarketOverview)
		competitors.POST("/fetch_from_ai", h.Analyses.FetchFromAI)
		competitors.POST("/identify", h.Identify.Identify)
		competitors.GET("/:id", h.Competitors.Get)
		competitors.PUT("/:id", h.Competitors.Update)
		competitors.DELETE("/:id", h.Competitors.Delete)
		competitors.POST("/:id/analyze", h.Analyses.Analyze)
		competitors.GET("/:id/analyses", h.Analyses.Analyses)

		auth.GET("/dashboard", h.Comparison.Dashboard)
		auth.GET("/analysis/comparison", h.Comparison.Comparison)
		auth.GET("/analysis/dashboard_data", h.Comparison.DashboardData)
	}

	return r
}
