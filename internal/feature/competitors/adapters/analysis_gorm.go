package adapters

import (
	"context"

	"rivalradar_backend/internal/feature/competitors/domain/entity"
	"rivalradar_backend/internal/feature/competitors/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// analysisGorm is the SQL implementation of AnalysisRepository.
type analysisGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure analysisGorm implements AnalysisRepository.
var _ usecase.AnalysisRepository = (*analysisGorm)(nil)

// NewAnalysisGorm creates a new instance of analysisGorm.
func NewAnalysisGorm(db *gorm.DB) *analysisGorm {
	return &analysisGorm{db: db}
}

// newestFirst orders analyses by date, breaking ties by insertion order.
func newestFirst(tx *gorm.DB) *gorm.DB {
	return tx.Order("analysis_date DESC, id DESC")
}

// insertAnalysis inserts a and fills in its ID.
func insertAnalysis(tx *gorm.DB, a *entity.Analysis) error {
	model := analysisModelFromEntity(a)
	if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
		return err
	}
	a.ID = model.ID
	return nil
}

// ListByCompetitor returns a company's analyses, newest first.
func (r *analysisGorm) ListByCompetitor(ctx context.Context, ownerID, competitorID uint) ([]entity.Analysis, error) {
	return r.find(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("owner_id = ? AND competitor_id = ?", ownerID, competitorID)
	})
}

// Recent returns up to limit of the user's analyses, newest first.
func (r *analysisGorm) Recent(ctx context.Context, ownerID uint, limit int) ([]entity.Analysis, error) {
	return r.find(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("owner_id = ?", ownerID).Limit(limit)
	})
}

// LatestPerCompetitor returns the newest analysis of each of the user's companies.
func (r *analysisGorm) LatestPerCompetitor(ctx context.Context, ownerID uint) (map[uint]entity.Analysis, error) {
	all, err := r.find(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("owner_id = ?", ownerID)
	})
	if err != nil {
		return nil, err
	}

	latest := make(map[uint]entity.Analysis)
	for _, a := range all {
		if _, ok := latest[a.CompetitorID]; !ok {
			latest[a.CompetitorID] = a
		}
	}
	return latest, nil
}

func (r *analysisGorm) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]entity.Analysis, error) {
	var models []AnalysisModel
	if err := r.db.WithContext(ctx).
		Preload("Competitor").
		Scopes(scope, newestFirst).
		Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Analysis, len(models))
	for i := range models {
		out[i] = models[i].toEntity()
	}
	return out, nil
}
