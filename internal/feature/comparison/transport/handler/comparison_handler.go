// Package handler はcomparisonフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"rivalradar_backend/internal/api"
	"rivalradar_backend/internal/feature/comparison/derive"
	"rivalradar_backend/internal/feature/comparison/domain"
	"rivalradar_backend/internal/feature/comparison/domain/entity"
	"rivalradar_backend/internal/feature/comparison/transport/http/dto"
	jwtmw "rivalradar_backend/internal/platform/jwt"
)

// DashboardUsecase は比較ビューの生成を定義します。
type DashboardUsecase interface {
	Dashboard(ctx context.Context, ownerID uint) (derive.ViewModel, error)
	Comparison(ctx context.Context, ownerID uint) (derive.ViewModel, error)
	CategorySeries(ctx context.Context, ownerID uint) ([]entity.SeriesPoint, error)
}

// ComparisonHandler は比較ダッシュボードのHTTPリクエストを処理します。
type ComparisonHandler struct {
	uc DashboardUsecase
}

// NewComparisonHandler はComparisonHandlerの新しいインスタンスを生成します。
func NewComparisonHandler(uc DashboardUsecase) *ComparisonHandler {
	return &ComparisonHandler{uc: uc}
}

// Dashboard はダッシュボードのビューモデルを返します。
//
// エンドポイント: GET /dashboard
func (h *ComparisonHandler) Dashboard(c *gin.Context) {
	h.respond(c, h.uc.Dashboard)
}

// Comparison は比較画面のビューモデルを返します。
//
// エンドポイント: GET /analysis/comparison
func (h *ComparisonHandler) Comparison(c *gin.Context) {
	h.respond(c, h.uc.Comparison)
}

// DashboardData はカテゴリ別スコア系列のみを返します。
//
// エンドポイント: GET /analysis/dashboard_data
func (h *ComparisonHandler) DashboardData(c *gin.Context) {
	owner, ok := jwtmw.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	points, err := h.uc.CategorySeries(c.Request.Context(), owner)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSeriesRes(points))
}

func (h *ComparisonHandler) respond(c *gin.Context, build func(context.Context, uint) (derive.ViewModel, error)) {
	owner, ok := jwtmw.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	vm, err := build(c.Request.Context(), owner)
	// 主企業の未登録はエラーではなく、status で画面側に伝える
	if err != nil && !errors.Is(err, domain.ErrMissingPrimaryEntity) {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewViewModelRes(vm))
}

// writeError は入力不整合を422、それ以外を500として返します。
func writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	if errors.Is(err, domain.ErrDuplicateCompetitorName) || errors.Is(err, domain.ErrMultiplePrimaryEntities) {
		slog.WarnContext(ctx, "comparison input rejected", "error", err)
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
		return
	}
	slog.ErrorContext(ctx, "comparison build failed", "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to build comparison"})
}
