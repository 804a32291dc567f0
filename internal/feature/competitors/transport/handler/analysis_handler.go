package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"rivalradar_backend/internal/api"
	"rivalradar_backend/internal/feature/competitors/domain/entity"
	"rivalradar_backend/internal/feature/competitors/transport/http/dto"
)

// AnalysisUsecase はAI分析と企業調査のユースケースを定義します。
type AnalysisUsecase interface {
	Analyze(ctx context.Context, ownerID, competitorID uint) (*entity.Analysis, error)
	ListAnalyses(ctx context.Context, ownerID, competitorID uint) ([]entity.Analysis, error)
	FetchFromAI(ctx context.Context, ownerID uint, companyName string) (*entity.Competitor, error)
}

// AnalysisHandler はAI分析のHTTPリクエストを処理します。
type AnalysisHandler struct {
	uc AnalysisUsecase
}

// NewAnalysisHandler はAnalysisHandlerの新しいインスタンスを生成します。
func NewAnalysisHandler(uc AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Analyze は企業をAIで分析し、保存した結果を返します。
//
// エンドポイント: POST /competitors/:id/analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := h.uc.Analyze(c.Request.Context(), owner, id)
	if err != nil {
		writeError(c, err, http.StatusBadGateway, "analysis failed")
		return
	}
	slog.InfoContext(c.Request.Context(), "competitor analyzed", "competitor_id", id, "analysis_id", a.ID)
	c.JSON(http.StatusCreated, dto.NewAnalysisRes(*a))
}

// Analyses は企業の分析履歴を返します。
//
// エンドポイント: GET /competitors/:id/analyses
func (h *AnalysisHandler) Analyses(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	list, err := h.uc.ListAnalyses(c.Request.Context(), owner, id)
	if err != nil {
		writeError(c, err, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	out := make([]dto.AnalysisRes, 0, len(list))
	for _, a := range list {
		out = append(out, dto.NewAnalysisRes(a))
	}
	c.JSON(http.StatusOK, out)
}

// FetchFromAI は企業名をAIで調査し、新しい企業として登録します。
//
// エンドポイント: POST /competitors/fetch_from_ai
func (h *AnalysisHandler) FetchFromAI(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.FetchFromAIReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "fetch_from_ai validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "company_name is required"})
		return
	}
	comp, err := h.uc.FetchFromAI(c.Request.Context(), owner, req.CompanyName)
	if err != nil {
		writeError(c, err, http.StatusBadGateway, "company research failed")
		return
	}
	c.JSON(http.StatusCreated, dto.NewCompetitorRes(*comp))
}
