package usecase_test

import (
	"context"
	"errors"

	"rivalradar_backend/internal/feature/competitors/domain/entity"
)

// errDB はモックと期待値の間で共有されるセンチネルエラーです。
var errDB = errors.New("db error")

type mockCompetitorRepository struct {
	ListByOwnerFunc    func(ctx context.Context, ownerID uint) ([]entity.Competitor, error)
	FindByIDFunc       func(ctx context.Context, ownerID, id uint) (*entity.Competitor, error)
	FindPrimaryFunc    func(ctx context.Context, ownerID uint) (*entity.Competitor, error)
	CreateFunc         func(ctx context.Context, c *entity.Competitor) error
	UpdateFunc         func(ctx context.Context, c *entity.Competitor) error
	DeleteFunc         func(ctx context.Context, ownerID, id uint) error
	RecordAnalysisFunc func(ctx context.Context, a *entity.Analysis) error

	CreateCalls int
	UpdateCalls int
}

func (m *mockCompetitorRepository) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Competitor, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, errors.New("ListByOwnerFunc is not implemented")
}

func (m *mockCompetitorRepository) FindByID(ctx context.Context, ownerID, id uint) (*entity.Competitor, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, ownerID, id)
	}
	return nil, errors.New("FindByIDFunc is not implemented")
}

func (m *mockCompetitorRepository) FindPrimary(ctx context.Context, ownerID uint) (*entity.Competitor, error) {
	if m.FindPrimaryFunc != nil {
		return m.FindPrimaryFunc(ctx, ownerID)
	}
	return nil, errors.New("FindPrimaryFunc is not implemented")
}

func (m *mockCompetitorRepository) Create(ctx context.Context, c *entity.Competitor) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return errors.New("CreateFunc is not implemented")
}

func (m *mockCompetitorRepository) Update(ctx context.Context, c *entity.Competitor) error {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return errors.New("UpdateFunc is not implemented")
}

func (m *mockCompetitorRepository) Delete(ctx context.Context, ownerID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ownerID, id)
	}
	return errors.New("DeleteFunc is not implemented")
}

func (m *mockCompetitorRepository) RecordAnalysis(ctx context.Context, a *entity.Analysis) error {
	if m.RecordAnalysisFunc != nil {
		return m.RecordAnalysisFunc(ctx, a)
	}
	return errors.New("RecordAnalysisFunc is not implemented")
}

type mockAnalysisRepository struct {
	ListByCompetitorFunc    func(ctx context.Context, ownerID, competitorID uint) ([]entity.Analysis, error)
	RecentFunc              func(ctx context.Context, ownerID uint, limit int) ([]entity.Analysis, error)
	LatestPerCompetitorFunc func(ctx context.Context, ownerID uint) (map[uint]entity.Analysis, error)
}

func (m *mockAnalysisRepository) ListByCompetitor(ctx context.Context, ownerID, competitorID uint) ([]entity.Analysis, error) {
	if m.ListByCompetitorFunc != nil {
		return m.ListByCompetitorFunc(ctx, ownerID, competitorID)
	}
	return nil, errors.New("ListByCompetitorFunc is not implemented")
}

func (m *mockAnalysisRepository) Recent(ctx context.Context, ownerID uint, limit int) ([]entity.Analysis, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, ownerID, limit)
	}
	return nil, errors.New("RecentFunc is not implemented")
}

func (m *mockAnalysisRepository) LatestPerCompetitor(ctx context.Context, ownerID uint) (map[uint]entity.Analysis, error) {
	if m.LatestPerCompetitorFunc != nil {
		return m.LatestPerCompetitorFunc(ctx, ownerID)
	}
	return nil, errors.New("LatestPerCompetitorFunc is not implemented")
}

type mockInsightGenerator struct {
	GenerateAnalysisFunc func(ctx context.Context, prompt string) (*entity.AnalysisResult, error)
	ResearchCompanyFunc  func(ctx context.Context, prompt string) (*entity.CompanyProfile, error)

	Prompts []string
}

func (m *mockInsightGenerator) GenerateAnalysis(ctx context.Context, prompt string) (*entity.AnalysisResult, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.GenerateAnalysisFunc != nil {
		return m.GenerateAnalysisFunc(ctx, prompt)
	}
	return nil, errors.New("GenerateAnalysisFunc is not implemented")
}

func (m *mockInsightGenerator) ResearchCompany(ctx context.Context, prompt string) (*entity.CompanyProfile, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.ResearchCompanyFunc != nil {
		return m.ResearchCompanyFunc(ctx, prompt)
	}
	return nil, errors.New("ResearchCompanyFunc is not implemented")
}

type mockLogoDetector struct {
	DetectLogosFunc  func(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error)
	DetectLogosCalls int
}

func (m *mockLogoDetector) DetectLogos(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
	m.DetectLogosCalls++
	if m.DetectLogosFunc != nil {
		return m.DetectLogosFunc(ctx, imageData)
	}
	return nil, errors.New("DetectLogosFunc is not implemented")
}

func ptr[T any](v T) *T { return &v }
