package di

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	competitorsadapters "rivalradar_backend/internal/feature/competitors/adapters"
	"rivalradar_backend/internal/feature/competitors/adapters/gemini"
	"rivalradar_backend/internal/feature/competitors/adapters/vision"
	"rivalradar_backend/internal/feature/competitors/usecase"
	"rivalradar_backend/internal/platform/cache"
	infrahttp "rivalradar_backend/internal/platform/http"
	"rivalradar_backend/internal/platform/metrics"
)

// EnvKeyCompanyCacheTTL is the environment variable holding the company list cache TTL.
const EnvKeyCompanyCacheTTL = "COMPANY_CACHE_TTL"

// NewCompetitorRepository creates the SQL company repository wrapped in the list cache.
// The cache lives in Redis when rdb is non-nil and in process memory otherwise.
func NewCompetitorRepository(db *gorm.DB, rdb *redis.Client, m *metrics.Metrics) usecase.CompetitorRepository {
	ttl, err := time.ParseDuration(os.Getenv(EnvKeyCompanyCacheTTL))
	if err != nil || ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return cache.NewCachingCompetitorRepository(rdb, ttl, competitorsadapters.NewCompetitorGorm(db), "competitors", m)
}

// NewInsightGenerator creates a rate-limited Gemini client with its own HTTP client.
func NewInsightGenerator(ctx context.Context, m *metrics.Metrics) (*gemini.GeminiClient, error) {
	cfg := gemini.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	client, err := gemini.NewGeminiClient(ctx, cfg, httpClient, m)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "gemini client ready", "model", cfg.Model, "rpm", cfg.RequestsPerMinute)
	return client, nil
}

// NewLogoDetector creates a Cloud Vision logo detector using Application Default Credentials.
func NewLogoDetector(ctx context.Context) (*vision.VisionLogoDetector, error) {
	return vision.NewVisionLogoDetector(ctx)
}
