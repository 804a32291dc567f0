package adapters

import (
	"context"
	"errors"

	"rivalradar_backend/internal/feature/competitors/domain/entity"
	"rivalradar_backend/internal/feature/competitors/usecase"
	"rivalradar_backend/internal/platform/db"

	"gorm.io/gorm"
)

// competitorGorm is the SQL implementation of CompetitorRepository.
type competitorGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure competitorGorm implements CompetitorRepository.
var _ usecase.CompetitorRepository = (*competitorGorm)(nil)

// NewCompetitorGorm creates a new instance of competitorGorm.
func NewCompetitorGorm(db *gorm.DB) *competitorGorm {
	return &competitorGorm{db: db}
}

// ownedBy scopes a query to one user's companies.
func ownedBy(ownerID uint) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("owner_id = ?", ownerID)
	}
}

// ListByOwner returns the user's companies, most recently updated first.
func (r *competitorGorm) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Competitor, error) {
	var models []CompetitorModel
	if err := r.db.WithContext(ctx).Scopes(ownedBy(ownerID)).
		Order("updated_at DESC, id DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Competitor, len(models))
	for i := range models {
		out[i] = models[i].toEntity()
	}
	return out, nil
}

// FindByID retrieves one of the user's companies.
func (r *competitorGorm) FindByID(ctx context.Context, ownerID, id uint) (*entity.Competitor, error) {
	return r.first(ctx, ownedBy(ownerID), func(tx *gorm.DB) *gorm.DB { return tx.Where("id = ?", id) })
}

// FindPrimary retrieves the user's own company.
func (r *competitorGorm) FindPrimary(ctx context.Context, ownerID uint) (*entity.Competitor, error) {
	return r.first(ctx, ownedBy(ownerID), func(tx *gorm.DB) *gorm.DB { return tx.Where("is_primary = ?", true) })
}

func (r *competitorGorm) first(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) (*entity.Competitor, error) {
	var model CompetitorModel
	if err := r.db.WithContext(ctx).Scopes(scopes...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCompetitorNotFound
		}
		return nil, err
	}
	c := model.toEntity()
	return &c, nil
}

// Create persists a new company and fills in its generated fields.
func (r *competitorGorm) Create(ctx context.Context, c *entity.Competitor) error {
	model := competitorModelFromEntity(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return usecase.ErrPrimaryAlreadyExists
		}
		return err
	}
	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

// Update overwrites the editable fields of a company.
func (r *competitorGorm) Update(ctx context.Context, c *entity.Competitor) error {
	model := competitorModelFromEntity(c)
	res := r.db.WithContext(ctx).Model(&CompetitorModel{}).
		Scopes(ownedBy(c.OwnerID)).
		Where("id = ?", c.ID).
		Select("name", "description", "website", "features", "market_position", "is_primary").
		Updates(model)
	if res.Error != nil {
		if db.IsUniqueViolation(res.Error) {
			return usecase.ErrPrimaryAlreadyExists
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCompetitorNotFound
	}
	c.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete removes a company together with its analyses.
func (r *competitorGorm) Delete(ctx context.Context, ownerID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("competitor_id = ? AND owner_id = ?", id, ownerID).
			Delete(&AnalysisModel{}).Error; err != nil {
			return err
		}
		res := tx.Scopes(ownedBy(ownerID)).Where("id = ?", id).Delete(&CompetitorModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrCompetitorNotFound
		}
		return nil
	})
}

// RecordAnalysis stores an analysis and stamps the company's last_analyzed
// in one transaction. Nothing is written when the company is not the owner's.
func (r *competitorGorm) RecordAnalysis(ctx context.Context, a *entity.Analysis) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&CompetitorModel{}).
			Scopes(ownedBy(a.OwnerID)).
			Where("id = ?", a.CompetitorID).
			Update("last_analyzed", a.AnalysisDate)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrCompetitorNotFound
		}
		return insertAnalysis(tx, a)
	})
}
