package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"rivalradar_backend/internal/api"
	"rivalradar_backend/internal/feature/competitors/domain/entity"
	"rivalradar_backend/internal/feature/competitors/transport/http/dto"
	"rivalradar_backend/internal/feature/competitors/usecase"
)

// CompetitorUsecase は企業のCRUDと市場概要のユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CompetitorUsecase interface {
	List(ctx context.Context, ownerID uint) ([]entity.Competitor, error)
	Get(ctx context.Context, ownerID, id uint) (*entity.Competitor, error)
	Create(ctx context.Context, ownerID uint, in usecase.CompetitorInput) (*entity.Competitor, error)
	Update(ctx context.Context, ownerID, id uint, in usecase.CompetitorInput) (*entity.Competitor, error)
	Delete(ctx context.Context, ownerID, id uint) error
	MarketOverview(ctx context.Context, ownerID uint) (*entity.MarketOverview, error)
}

// CompetitorHandler は企業のHTTPリクエストを処理します。
type CompetitorHandler struct {
	uc CompetitorUsecase
}

// NewCompetitorHandler はCompetitorHandlerの新しいインスタンスを生成します。
func NewCompetitorHandler(uc CompetitorUsecase) *CompetitorHandler {
	return &CompetitorHandler{uc: uc}
}

func toInput(req dto.CompetitorReq) usecase.CompetitorInput {
	return usecase.CompetitorInput{
		Name:           req.Name,
		Description:    req.Description,
		Website:        req.Website,
		Features:       req.Features,
		MarketPosition: req.MarketPosition,
		IsPrimary:      req.IsPrimary,
	}
}

// List はユーザーの企業一覧を返します。
//
// エンドポイント: GET /competitors
func (h *CompetitorHandler) List(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}
	list, err := h.uc.List(c.Request.Context(), owner)
	if err != nil {
		writeError(c, err, http.StatusInternalServerError, "failed to list competitors")
		return
	}
	c.JSON(http.StatusOK, dto.NewCompetitorList(list))
}

// Get は企業を1件返します。
//
// エンドポイント: GET /competitors/:id
func (h *CompetitorHandler) Get(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	comp, err := h.uc.Get(c.Request.Context(), owner, id)
	if err != nil {
		writeError(c, err, http.StatusInternalServerError, "failed to load competitor")
		return
	}
	c.JSON(http.StatusOK, dto.NewCompetitorRes(*comp))
}

// Create は企業を登録します。
//
// エンドポイント: POST /competitors
func (h *CompetitorHandler) Create(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CompetitorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "competitor validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	comp, err := h.uc.Create(c.Request.Context(), owner, toInput(req))
	if err != nil {
		writeError(c, err, http.StatusInternalServerError, "failed to create competitor")
		return
	}
	c.JSON(http.StatusCreated, dto.NewCompetitorRes(*comp))
}

// Update は企業を更新します。
//
// エンドポイント: PUT /competitors/:id
func (h *CompetitorHandler) Update(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.CompetitorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "competitor validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	comp, err := h.uc.Update(c.Request.Context(), owner, id, toInput(req))
	if err != nil {
		writeError(c, err, http.StatusInternalServerError, "failed to update competitor")
		return
	}
	c.JSON(http.StatusOK, dto.NewCompetitorRes(*comp))
}

// Delete は企業を削除します。
//
// エンドポイント: DELETE /competitors/:id
func (h *CompetitorHandler) Delete(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), owner, id); err != nil {
		writeError(c, err, http.StatusInternalServerError, "failed to delete competitor")
		return
	}
	c.Status(http.StatusNoContent)
}

// MarketOverview は市場概要を返します。
//
// エンドポイント: GET /competitors/market_overview
func (h *CompetitorHandler) MarketOverview(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}
	o, err := h.uc.MarketOverview(c.Request.Context(), owner)
	if err != nil {
		writeError(c, err, http.StatusInternalServerError, "failed to load market overview")
		return
	}
	c.JSON(http.StatusOK, dto.NewMarketOverviewRes(*o))
}
