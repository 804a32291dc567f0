package usecase

import (
	"context"
	"errors"
	"fmt"

	"rivalradar_backend/internal/feature/competitors/domain/entity"
)

// recentAnalysesLimit は市場概要に含める最新分析の件数です。
const recentAnalysesLimit = 5

// competitorUsecase は企業のCRUDと市場概要を提供します。
type competitorUsecase struct {
	competitors CompetitorRepository
	analyses    AnalysisRepository
}

// NewCompetitorUsecase はcompetitorUsecaseの新しいインスタンスを生成します。
func NewCompetitorUsecase(competitors CompetitorRepository, analyses AnalysisRepository) *competitorUsecase {
	return &competitorUsecase{competitors: competitors, analyses: analyses}
}

// List はユーザーの企業一覧を返します。
func (u *competitorUsecase) List(ctx context.Context, ownerID uint) ([]entity.Competitor, error) {
	return u.competitors.ListByOwner(ctx, ownerID)
}

// Get は企業を1件返します。
func (u *competitorUsecase) Get(ctx context.Context, ownerID, id uint) (*entity.Competitor, error) {
	return u.competitors.FindByID(ctx, ownerID, id)
}

// Create は企業を登録します。
// 既に主企業が存在する状態で IsPrimary を指定すると ErrPrimaryAlreadyExists を返します。
func (u *competitorUsecase) Create(ctx context.Context, ownerID uint, in CompetitorInput) (*entity.Competitor, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	if in.IsPrimary {
		if err := u.ensureNoOtherPrimary(ctx, ownerID, 0); err != nil {
			return nil, err
		}
	}

	c := &entity.Competitor{
		OwnerID:        ownerID,
		Name:           in.Name,
		Description:    in.Description,
		Website:        in.Website,
		Features:       in.Features,
		MarketPosition: in.MarketPosition,
		IsPrimary:      in.IsPrimary,
	}
	if err := u.competitors.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update は企業を全項目置き換えで更新します。
func (u *competitorUsecase) Update(ctx context.Context, ownerID, id uint, in CompetitorInput) (*entity.Competitor, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	c, err := u.competitors.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if in.IsPrimary && !c.IsPrimary {
		if err := u.ensureNoOtherPrimary(ctx, ownerID, id); err != nil {
			return nil, err
		}
	}

	c.Name = in.Name
	c.Description = in.Description
	c.Website = in.Website
	c.Features = in.Features
	c.MarketPosition = in.MarketPosition
	c.IsPrimary = in.IsPrimary
	if err := u.competitors.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete は企業を削除します。
func (u *competitorUsecase) Delete(ctx context.Context, ownerID, id uint) error {
	return u.competitors.Delete(ctx, ownerID, id)
}

// MarketOverview は登録企業数、市場ポジションの種類、最新の分析5件を返します。
func (u *competitorUsecase) MarketOverview(ctx context.Context, ownerID uint) (*entity.MarketOverview, error) {
	list, err := u.competitors.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitors: %w", err)
	}
	recent, err := u.analyses.Recent(ctx, ownerID, recentAnalysesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent analyses: %w", err)
	}

	positions := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, c := range list {
		if c.MarketPosition == "" {
			continue
		}
		if _, ok := seen[c.MarketPosition]; ok {
			continue
		}
		seen[c.MarketPosition] = struct{}{}
		positions = append(positions, c.MarketPosition)
	}

	return &entity.MarketOverview{
		TotalCompetitors: len(list),
		MarketPositions:  positions,
		RecentAnalyses:   recent,
	}, nil
}

// ensureNoOtherPrimary は exceptID 以外に主企業が存在しないことを確認します。
func (u *competitorUsecase) ensureNoOtherPrimary(ctx context.Context, ownerID, exceptID uint) error {
	p, err := u.competitors.FindPrimary(ctx, ownerID)
	switch {
	case errors.Is(err, ErrCompetitorNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to look up primary company: %w", err)
	case p.ID != exceptID:
		return ErrPrimaryAlreadyExists
	}
	return nil
}
