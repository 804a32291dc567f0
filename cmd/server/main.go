package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"rivalradar_backend/internal/app/di"
	"rivalradar_backend/internal/app/router"
	authadapters "rivalradar_backend/internal/feature/auth/adapters"
	authentity "rivalradar_backend/internal/feature/auth/domain/entity"
	authhandler "rivalradar_backend/internal/feature/auth/transport/handler"
	authusecase "rivalradar_backend/internal/feature/auth/usecase"
	comparisonhandler "rivalradar_backend/internal/feature/comparison/transport/handler"
	comparisonusecase "rivalradar_backend/internal/feature/comparison/usecase"
	competitorsadapters "rivalradar_backend/internal/feature/competitors/adapters"
	competitorshandler "rivalradar_backend/internal/feature/competitors/transport/handler"
	competitorsusecase "rivalradar_backend/internal/feature/competitors/usecase"
	infradb "rivalradar_backend/internal/platform/db"
	"rivalradar_backend/internal/platform/http/handler"
	jwtmw "rivalradar_backend/internal/platform/jwt"
	"rivalradar_backend/internal/platform/logging"
	"rivalradar_backend/internal/platform/metrics"
	infraredis "rivalradar_backend/internal/platform/redis"
)

const (
	sessionPurgeInterval = time.Hour
	shutdownTimeout      = 10 * time.Second
)

func main() {
	slog.SetDefault(logging.New(os.Stdout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	db, err := infradb.OpenDB(
		&authentity.User{},
		&authadapters.SessionModel{},
		&competitorsadapters.CompetitorModel{},
		&competitorsadapters.AnalysisModel{},
	)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get sql.DB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, infraredis.LoadConfig()); err != nil {
		slog.Warn("Redis unavailable. Using SQL sessions and in-memory cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	m := metrics.New()

	// JWT_SECRETチェック（開発中の注意喚起）
	jwtCfg := jwtmw.LoadConfig()
	if jwtCfg.Secret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	// 外部API
	ai, err := di.NewInsightGenerator(ctx, m)
	if err != nil {
		slog.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}
	logos, err := di.NewLogoDetector(ctx)
	if err != nil {
		slog.Error("failed to create vision client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := logos.Close(); err != nil {
			slog.Error("failed to close vision client", "error", err)
		}
	}()

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	competitorRepo := di.NewCompetitorRepository(db, rdb, m)
	analysisRepo := competitorsadapters.NewAnalysisGorm(db)

	// Usecase
	comparisonCfg := comparisonusecase.LoadConfig()
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtmw.NewGenerator(jwtCfg.Secret, jwtCfg.AccessTTL), authusecase.LoadConfig())
	competitorUC := competitorsusecase.NewCompetitorUsecase(competitorRepo, analysisRepo)
	analysisUC := competitorsusecase.NewAnalysisUsecase(competitorRepo, analysisRepo, ai, comparisonCfg.CategoryList())
	identifyUC := competitorsusecase.NewIdentifyUsecase(logos, competitorRepo)
	dashboardUC := comparisonusecase.NewDashboardUsecase(competitorRepo, analysisRepo, comparisonCfg, m)

	go purgeSessions(ctx, authUC)

	// Handler
	handlers := router.Handlers{
		Auth:        authhandler.NewAuthHandler(authUC),
		Competitors: competitorshandler.NewCompetitorHandler(competitorUC),
		Analyses:    competitorshandler.NewAnalysisHandler(analysisUC),
		Identify:    competitorshandler.NewIdentifyHandler(identifyUC),
		Comparison:  comparisonhandler.NewComparisonHandler(dashboardUC),
	}

	checks := []handler.Check{{Name: "database", Ping: sqlDB.PingContext}}
	if rdb != nil {
		checks = append(checks, handler.Check{
			Name:     "redis",
			Optional: true,
			Ping:     func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}

	// ルータ生成
	r := router.NewRouter(handlers, m, checks...)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

type sessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// purgeSessions は期限切れのセッションを定期的に削除します。
func purgeSessions(ctx context.Context, p sessionPurger) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.PurgeExpiredSessions(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "failed to purge sessions", "error", err)
				continue
			}
			if n > 0 {
				slog.InfoContext(ctx, "purged expired sessions", "count", n)
			}
		}
	}
}
