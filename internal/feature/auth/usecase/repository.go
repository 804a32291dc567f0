package usecase

import (
	"context"

	"rivalradar_backend/internal/feature/auth/domain/entity"
)

// UserRepository はユーザーの永続化を抽象化します。
// インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create はユーザーを保存します。メールアドレスが重複する場合 ErrEmailAlreadyExists を返します。
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail はメールアドレスでユーザーを検索します。存在しない場合 ErrUserNotFound を返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByID はIDでユーザーを検索します。存在しない場合 ErrUserNotFound を返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// SessionRepository はリフレッシュトークンのセッションを保存します。
// SQLテーブル版とRedis版の2実装があります。
type SessionRepository interface {
	// Create はセッションを保存します。
	Create(ctx context.Context, session *entity.Session) error
	// FindByID はリフレッシュトークンでセッションを取得します。存在しない場合 ErrSessionNotFound を返します。
	FindByID(ctx context.Context, id string) (*entity.Session, error)
	// FindByUserID はユーザーの有効なセッションを古い順に返します。
	FindByUserID(ctx context.Context, userID uint) ([]*entity.Session, error)
	// Rotate は oldID を失効させ next を保存します。oldID が無いか失効済みなら ErrSessionNotFound を返します。
	Rotate(ctx context.Context, oldID string, next *entity.Session) error
	// Revoke はセッションを失効させます。
	Revoke(ctx context.Context, id string) error
	// RevokeAllByUserID はユーザーの全セッションを失効させます。
	RevokeAllByUserID(ctx context.Context, userID uint) error
	// DeleteExpired は期限切れのセッションを削除し、削除件数を返します。
	DeleteExpired(ctx context.Context) (int64, error)
	// CountByUserID はユーザーの有効なセッション数を返します。
	CountByUserID(ctx context.Context, userID uint) (int64, error)
	// DeleteOldestByUserID はユーザーの最も古い有効なセッションを削除します。
	DeleteOldestByUserID(ctx context.Context, userID uint) error
}

// JWTGenerator はアクセストークンを発行します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}
