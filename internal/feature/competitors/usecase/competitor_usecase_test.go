package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivalradar_backend/internal/feature/competitors/domain/entity"
	"rivalradar_backend/internal/feature/competitors/usecase"
)

func TestCompetitorUsecase_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       usecase.CompetitorInput
		primary     *entity.Competitor
		wantErr     error
		wantCreates int
		check       func(t *testing.T, c *entity.Competitor)
	}{
		{
			name: "success: fields are trimmed and features stored as entered",
			input: usecase.CompetitorInput{
				Name:     "  Acme ",
				Website:  "https://acme.example",
				Features: []string{"SSO", " SSO", "sso ", "", "SSO", "API"},
			},
			wantCreates: 1,
			check: func(t *testing.T, c *entity.Competitor) {
				assert.Equal(t, "Acme", c.Name)
				assert.Equal(t, uint(7), c.OwnerID)
				assert.Equal(t, []string{"SSO", " SSO", "sso ", "SSO", "API"}, c.Features)
			},
		},
		{
			name:        "success: first primary company",
			input:       usecase.CompetitorInput{Name: "Mine", IsPrimary: true},
			wantCreates: 1,
			check: func(t *testing.T, c *entity.Competitor) {
				assert.True(t, c.IsPrimary)
			},
		},
		{
			name:    "error: second primary company",
			input:   usecase.CompetitorInput{Name: "Mine2", IsPrimary: true},
			primary: &entity.Competitor{ID: 1, Name: "Mine", IsPrimary: true},
			wantErr: usecase.ErrPrimaryAlreadyExists,
		},
		{
			name:    "error: name is required",
			input:   usecase.CompetitorInput{Name: "   "},
			wantErr: usecase.ErrInvalidCompetitor,
		},
		{
			name:    "error: website is not a URL",
			input:   usecase.CompetitorInput{Name: "Acme", Website: "acme"},
			wantErr: usecase.ErrInvalidCompetitor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockCompetitorRepository{
				FindPrimaryFunc: func(ctx context.Context, ownerID uint) (*entity.Competitor, error) {
					if tt.primary == nil {
						return nil, usecase.ErrCompetitorNotFound
					}
					return tt.primary, nil
				},
				CreateFunc: func(ctx context.Context, c *entity.Competitor) error {
					c.ID = 42
					return nil
				},
			}
			uc := usecase.NewCompetitorUsecase(repo, &mockAnalysisRepository{})

			got, err := uc.Create(context.Background(), 7, tt.input)
			assert.Equal(t, tt.wantCreates, repo.CreateCalls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(42), got.ID)
			tt.check(t, got)
		})
	}
}

func TestCompetitorUsecase_Update(t *testing.T) {
	t.Parallel()

	t.Run("keeping primary flag on the primary company is allowed", func(t *testing.T) {
		t.Parallel()
		repo := &mockCompetitorRepository{
			FindByIDFunc: func(ctx context.Context, ownerID, id uint) (*entity.Competitor, error) {
				return &entity.Competitor{ID: id, OwnerID: ownerID, Name: "Old", IsPrimary: true}, nil
			},
			UpdateFunc: func(ctx context.Context, c *entity.Competitor) error { return nil },
		}
		uc := usecase.NewCompetitorUsecase(repo, &mockAnalysisRepository{})

		got, err := uc.Update(context.Background(), 1, 3, usecase.CompetitorInput{
			Name:      "New",
			Features:  []string{"SSO", " SSO", "sso "},
			IsPrimary: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "New", got.Name)
		assert.Equal(t, []string{"SSO", " SSO", "sso "}, got.Features)
		assert.Equal(t, 1, repo.UpdateCalls)
	})

	t.Run("promoting a competitor while another primary exists fails", func(t *testing.T) {
		t.Parallel()
		repo := &mockCompetitorRepository{
			FindByIDFunc: func(ctx context.Context, ownerID, id uint) (*entity.Competitor, error) {
				return &entity.Competitor{ID: id, Name: "Rival"}, nil
			},
			FindPrimaryFunc: func(ctx context.Context, ownerID uint) (*entity.Competitor, error) {
				return &entity.Competitor{ID: 9, IsPrimary: true}, nil
			},
		}
		uc := usecase.NewCompetitorUsecase(repo, &mockAnalysisRepository{})

		_, err := uc.Update(context.Background(), 1, 3, usecase.CompetitorInput{Name: "Rival", IsPrimary: true})
		assert.ErrorIs(t, err, usecase.ErrPrimaryAlreadyExists)
		assert.Equal(t, 0, repo.UpdateCalls)
	})

	t.Run("not found is passed through", func(t *testing.T) {
		t.Parallel()
		repo := &mockCompetitorRepository{
			FindByIDFunc: func(ctx context.Context, ownerID, id uint) (*entity.Competitor, error) {
				return nil, usecase.ErrCompetitorNotFound
			},
		}
		uc := usecase.NewCompetitorUsecase(repo, &mockAnalysisRepository{})

		_, err := uc.Update(context.Background(), 1, 3, usecase.CompetitorInput{Name: "X"})
		assert.ErrorIs(t, err, usecase.ErrCompetitorNotFound)
	})

	t.Run("primary lookup failure is wrapped", func(t *testing.T) {
		t.Parallel()
		repo := &mockCompetitorRepository{
			FindByIDFunc: func(ctx context.Context, ownerID, id uint) (*entity.Competitor, error) {
				return &entity.Competitor{ID: id}, nil
			},
			FindPrimaryFunc: func(ctx context.Context, ownerID uint) (*entity.Competitor, error) {
				return nil, errDB
			},
		}
		uc := usecase.NewCompetitorUsecase(repo, &mockAnalysisRepository{})

		_, err := uc.Update(context.Background(), 1, 3, usecase.CompetitorInput{Name: "X", IsPrimary: true})
		assert.ErrorIs(t, err, errDB)
	})
}

func TestCompetitorUsecase_MarketOverview(t *testing.T) {
	t.Parallel()

	recent := []entity.Analysis{{ID: 2, CompetitorName: "B"}, {ID: 1, CompetitorName: "A"}}
	var gotLimit int
	uc := usecase.NewCompetitorUsecase(
		&mockCompetitorRepository{
			ListByOwnerFunc: func(ctx context.Context, ownerID uint) ([]entity.Competitor, error) {
				return []entity.Competitor{
					{Name: "A", MarketPosition: "Leader"},
					{Name: "B", MarketPosition: "Niche"},
					{Name: "C", MarketPosition: "Leader"},
					{Name: "D"},
				}, nil
			},
		},
		&mockAnalysisRepository{
			RecentFunc: func(ctx context.Context, ownerID uint, limit int) ([]entity.Analysis, error) {
				gotLimit = limit
				return recent, nil
			},
		},
	)

	got, err := uc.MarketOverview(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, got.TotalCompetitors)
	assert.Equal(t, []string{"Leader", "Niche"}, got.MarketPositions)
	assert.Equal(t, recent, got.RecentAnalyses)
	assert.Equal(t, 5, gotLimit)
}

func TestCompetitorUsecase_MarketOverview_Errors(t *testing.T) {
	t.Parallel()

	uc := usecase.NewCompetitorUsecase(
		&mockCompetitorRepository{
			ListByOwnerFunc: func(ctx context.Context, ownerID uint) ([]entity.Competitor, error) {
				return nil, errDB
			},
		},
		&mockAnalysisRepository{},
	)
	_, err := uc.MarketOverview(context.Background(), 1)
	assert.True(t, errors.Is(err, errDB))
}
