// Package usecase は比較ダッシュボードのビューモデル生成を実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"rivalradar_backend/internal/feature/comparison/derive"
	"rivalradar_backend/internal/feature/comparison/domain"
	"rivalradar_backend/internal/feature/comparison/domain/entity"
	compentity "rivalradar_backend/internal/feature/competitors/domain/entity"
)

// ビュー名（メトリクスのラベル）
const (
	ViewDashboard     = "dashboard"
	ViewComparison    = "comparison"
	ViewDashboardData = "dashboard_data"
)

// statusError はインフラ障害で生成できなかったことを表すメトリクス用ステータスです。
const statusError = "error"

// CompanyLister はユーザーの登録企業を返します。
type CompanyLister interface {
	ListByOwner(ctx context.Context, ownerID uint) ([]compentity.Competitor, error)
}

// LatestAnalyses は企業ごとの最新の分析を返します。
type LatestAnalyses interface {
	LatestPerCompetitor(ctx context.Context, ownerID uint) (map[uint]compentity.Analysis, error)
}

// Observer はビューモデル生成の結果を記録します。
type Observer interface {
	ObserveViewModel(view, status string)
}

type nopObserver struct{}

func (nopObserver) ObserveViewModel(string, string) {}

// dashboardUsecase はユーザーのスナップショットから比較ビューを生成します。
type dashboardUsecase struct {
	companies CompanyLister
	analyses  LatestAnalyses
	cfg       Config
	observer  Observer
}

// NewDashboardUsecase はdashboardUsecaseの新しいインスタンスを生成します。
// observer が nil の場合は記録しません。
func NewDashboardUsecase(companies CompanyLister, analyses LatestAnalyses, cfg Config, observer Observer) *dashboardUsecase {
	if observer == nil {
		observer = nopObserver{}
	}
	return &dashboardUsecase{companies: companies, analyses: analyses, cfg: cfg, observer: observer}
}

// Dashboard はダッシュボード用のビューモデルを返します（提案機能は上限付き）。
// 主企業がない場合は StatusMissingPrimary のビューモデルと domain.ErrMissingPrimaryEntity を返します。
func (u *dashboardUsecase) Dashboard(ctx context.Context, ownerID uint) (derive.ViewModel, error) {
	return u.build(ctx, ViewDashboard, ownerID, u.cfg.SuggestionLimit)
}

// Comparison は比較画面用のビューモデルを返します（提案機能は上限なし）。
func (u *dashboardUsecase) Comparison(ctx context.Context, ownerID uint) (derive.ViewModel, error) {
	return u.build(ctx, ViewComparison, ownerID, 0)
}

// CategorySeries はカテゴリ別スコア系列のみを返します。
// 主企業がない場合は空のスライスを返します。
func (u *dashboardUsecase) CategorySeries(ctx context.Context, ownerID uint) ([]entity.SeriesPoint, error) {
	vm, err := u.build(ctx, ViewDashboardData, ownerID, 0)
	if errors.Is(err, domain.ErrMissingPrimaryEntity) {
		return []entity.SeriesPoint{}, nil
	}
	if err != nil {
		return nil, err
	}
	return vm.CategorySeries, nil
}

func (u *dashboardUsecase) build(ctx context.Context, view string, ownerID uint, suggestionLimit int) (derive.ViewModel, error) {
	companies, err := u.snapshot(ctx, ownerID)
	if err != nil {
		u.observer.ObserveViewModel(view, statusError)
		return derive.ViewModel{Status: derive.StatusInvalid}, err
	}

	vm, err := derive.Build(companies, derive.Config{
		Shares:          u.cfg.Shares,
		Categories:      u.cfg.Categories,
		Score:           derive.MetricScorer(companies),
		SuggestionLimit: suggestionLimit,
	})
	u.observer.ObserveViewModel(view, string(vm.Status))
	return vm, err
}

// snapshot は企業一覧と最新の分析を並行して読み込み、比較用の Company に変換します。
func (u *dashboardUsecase) snapshot(ctx context.Context, ownerID uint) ([]entity.Company, error) {
	var (
		list   []compentity.Competitor
		latest map[uint]compentity.Analysis
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if list, err = u.companies.ListByOwner(gctx, ownerID); err != nil {
			return fmt.Errorf("failed to list companies: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if latest, err = u.analyses.LatestPerCompetitor(gctx, ownerID); err != nil {
			return fmt.Errorf("failed to load latest analyses: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	companies := make([]entity.Company, 0, len(list))
	for _, c := range list {
		a, ok := latest[c.ID]
		companies = append(companies, toCompany(c, a, ok))
	}
	return companies, nil
}

// toCompany は登録企業と最新の分析を比較入力に変換します。
// 顧客満足度が指標にない場合は感情スコア×100で補います。
func toCompany(c compentity.Competitor, a compentity.Analysis, analysed bool) entity.Company {
	out := entity.Company{
		ID:             strconv.FormatUint(uint64(c.ID), 10),
		Name:           c.Name,
		Description:    c.Description,
		Website:        c.Website,
		Features:       c.Features,
		MarketPosition: c.MarketPosition,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		IsPrimary:      c.IsPrimary,
	}
	if !analysed {
		return out
	}
	if a.MarketShare != nil {
		out.MarketShare = *a.MarketShare
	}
	out.Metrics = make(map[string]float64, len(a.Metrics)+1)
	for k, v := range a.Metrics {
		out.Metrics[k] = v
	}
	if _, ok := out.Metrics[derive.CategoryCustomerSatisfaction]; !ok && a.SentimentScore != nil {
		out.Metrics[derive.CategoryCustomerSatisfaction] = *a.SentimentScore * 100
	}
	return out
}
