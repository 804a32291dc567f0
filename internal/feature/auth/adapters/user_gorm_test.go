package adapters

import (
	"context"
	"testing"
	"time"

	"rivalradar_backend/internal/feature/auth/domain/entity"
	"rivalradar_backend/internal/feature/auth/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepo(t *testing.T) *userGorm {
	t.Helper()
	return NewUserGorm(openTestDB(t, &entity.User{}))
}

func TestUserGorm_Create(t *testing.T) {
	t.Parallel()

	t.Run("success: persists profile fields and timestamps", func(t *testing.T) {
		t.Parallel()
		repo := newUserRepo(t)

		before := time.Now()
		user := &entity.User{
			Email:       "analyst@acme.test",
			Password:    "hashed",
			CompanyName: "Acme",
			Role:        entity.RoleAnalyst,
		}
		require.NoError(t, repo.Create(context.Background(), user))

		assert.NotZero(t, user.ID)
		assert.False(t, user.CreatedAt.Before(before.Add(-time.Second)))

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme", found.CompanyName)
		assert.Equal(t, entity.RoleAnalyst, found.Role)
		assert.Equal(t, user.CreatedAt.Unix(), found.CreatedAt.Unix())
	})

	t.Run("failure: duplicate email maps to ErrEmailAlreadyExists", func(t *testing.T) {
		t.Parallel()
		repo := newUserRepo(t)

		require.NoError(t, repo.Create(context.Background(), &entity.User{Email: "dup@acme.test", Password: "p1", Role: entity.RoleViewer}))
		err := repo.Create(context.Background(), &entity.User{Email: "dup@acme.test", Password: "p2", Role: entity.RoleViewer})

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})

	t.Run("failure: nil user", func(t *testing.T) {
		t.Parallel()
		repo := newUserRepo(t)

		assert.Error(t, repo.Create(context.Background(), nil))
	})
}

func TestUserGorm_Find(t *testing.T) {
	t.Parallel()

	repo := newUserRepo(t)
	ctx := context.Background()
	users := []*entity.User{
		{Email: "user1@example.com", Password: "pass1", Role: entity.RoleViewer},
		{Email: "user2@example.com", Password: "pass2", Role: entity.RoleAdmin},
		{Email: "user3@example.com", Password: "pass3", Role: entity.RoleViewer},
	}
	for _, u := range users {
		require.NoError(t, repo.Create(ctx, u))
	}

	tests := []struct {
		name    string
		find    func() (*entity.User, error)
		wantID  uint
		wantErr error
	}{
		{"by email", func() (*entity.User, error) { return repo.FindByEmail(ctx, "user2@example.com") }, users[1].ID, nil},
		{"by id", func() (*entity.User, error) { return repo.FindByID(ctx, users[2].ID) }, users[2].ID, nil},
		{"unknown email", func() (*entity.User, error) { return repo.FindByEmail(ctx, "nobody@example.com") }, 0, usecase.ErrUserNotFound},
		{"empty email", func() (*entity.User, error) { return repo.FindByEmail(ctx, "") }, 0, usecase.ErrUserNotFound},
		{"unknown id", func() (*entity.User, error) { return repo.FindByID(ctx, 999) }, 0, usecase.ErrUserNotFound},
		{"zero id", func() (*entity.User, error) { return repo.FindByID(ctx, 0) }, 0, usecase.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := tt.find()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, found.ID)
		})
	}
}
