package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"rivalradar_backend/internal/feature/competitors/domain/entity"
)

// analysisUsecase はAIによる競合分析と企業調査を提供します。
type analysisUsecase struct {
	competitors CompetitorRepository
	analyses    AnalysisRepository
	ai          InsightGenerator
	categories  []string
	now         func() time.Time
}

// NewAnalysisUsecase はanalysisUsecaseの新しいインスタンスを生成します。
// categories はAIにスコアを求める評価カテゴリです。
func NewAnalysisUsecase(competitors CompetitorRepository, analyses AnalysisRepository, ai InsightGenerator, categories []string) *analysisUsecase {
	return &analysisUsecase{
		competitors: competitors,
		analyses:    analyses,
		ai:          ai,
		categories:  categories,
		now:         time.Now,
	}
}

// Analyze は企業をAIで分析し、結果を保存して最終分析日時を更新します。
func (u *analysisUsecase) Analyze(ctx context.Context, ownerID, competitorID uint) (*entity.Analysis, error) {
	c, err := u.competitors.FindByID(ctx, ownerID, competitorID)
	if err != nil {
		return nil, err
	}

	res, err := u.ai.GenerateAnalysis(ctx, analysisPrompt(*c, u.categories))
	if err != nil {
		return nil, fmt.Errorf("failed to generate analysis: %w", err)
	}
	if res == nil {
		return nil, ErrAIResponse
	}

	now := u.now().UTC()
	a := &entity.Analysis{
		CompetitorID:   c.ID,
		CompetitorName: c.Name,
		OwnerID:        ownerID,
		AnalysisDate:   now,
		Strengths:      cleanList(res.Strengths),
		Weaknesses:     cleanList(res.Weaknesses),
		Opportunities:  cleanList(res.Opportunities),
		Threats:        cleanList(res.Threats),
		MarketShare:    clampPtr(res.MarketShare, 0, 100),
		SentimentScore: clampPtr(res.SentimentScore, 0, 1),
		Metrics:        clampMetrics(res.Metrics),
		AIInsights:     strings.TrimSpace(res.Summary),
	}
	if err := u.competitors.RecordAnalysis(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return a, nil
}

// ListAnalyses は企業の分析履歴を新しい順に返します。
func (u *analysisUsecase) ListAnalyses(ctx context.Context, ownerID, competitorID uint) ([]entity.Analysis, error) {
	if _, err := u.competitors.FindByID(ctx, ownerID, competitorID); err != nil {
		return nil, err
	}
	return u.analyses.ListByCompetitor(ctx, ownerID, competitorID)
}

// FetchFromAI は企業名をAIで調査し、結果を新しい競合企業として登録します。
func (u *analysisUsecase) FetchFromAI(ctx context.Context, ownerID uint, companyName string) (*entity.Competitor, error) {
	name, err := validateResearchName(companyName)
	if err != nil {
		return nil, err
	}

	p, err := u.ai.ResearchCompany(ctx, researchPrompt(name))
	if err != nil {
		return nil, fmt.Errorf("failed to research company: %w", err)
	}
	if p == nil {
		return nil, ErrAIResponse
	}

	in := CompetitorInput{
		Name:           p.Name,
		Description:    p.Description,
		Website:        p.Website,
		Features:       p.Features,
		MarketPosition: p.MarketPosition,
	}
	if strings.TrimSpace(in.Name) == "" {
		in.Name = name
	}
	// AIが返すURLは不正な場合があるので破棄する
	if w := strings.TrimSpace(in.Website); w != "" && !isWebURL(w) {
		in.Website = ""
	}
	if r := []rune(strings.TrimSpace(in.MarketPosition)); len(r) > MaxMarketPositionLength {
		in.MarketPosition = string(r[:MaxMarketPositionLength])
	}

	in, err = in.normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIResponse, err)
	}
	c := &entity.Competitor{
		OwnerID:        ownerID,
		Name:           in.Name,
		Description:    in.Description,
		Website:        in.Website,
		Features:       in.Features,
		MarketPosition: in.MarketPosition,
	}
	if err := u.competitors.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func clampPtr(v *float64, lo, hi float64) *float64 {
	if v == nil || math.IsNaN(*v) {
		return nil
	}
	c := math.Min(math.Max(*v, lo), hi)
	return &c
}

func clampMetrics(m map[string]float64) map[string]float64 {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		k = strings.TrimSpace(k)
		if k == "" || math.IsNaN(v) {
			continue
		}
		out[k] = math.Min(math.Max(v, 0), 100)
	}
	return out
}
