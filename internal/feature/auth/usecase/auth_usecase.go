// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"rivalradar_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// refreshTokenBytes はリフレッシュトークンのバイト長です（16進で64文字）。
	refreshTokenBytes = 32
)

// SignupInput はユーザー登録の入力です。
type SignupInput struct {
	Email       string
	Password    string
	CompanyName string
	Role        entity.Role // 空ならviewer
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	sessions     SessionRepository
	jwtGenerator JWTGenerator
	cfg          Config

	now      func() time.Time
	newToken func() (string, error)
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, sessions SessionRepository, jwtGenerator JWTGenerator, cfg Config) *authUsecase {
	return &authUsecase{
		users:        users,
		sessions:     sessions,
		jwtGenerator: jwtGenerator,
		cfg:          cfg.withDefaults(),
		now:          time.Now,
		newToken:     newRefreshToken,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters long", ErrWeakPassword, minPasswordLength)
	}
	return nil
}

// newRefreshToken は暗号論的乱数から64文字の16進トークンを生成します。
func newRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// isWellFormedToken はトークンが64文字の16進文字列かを判定します。
func isWellFormedToken(token string) bool {
	if len(token) != refreshTokenBytes*2 {
		return false
	}
	_, err := hex.DecodeString(token)
	return err == nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) error {
	// パスワード強度を検証
	if err := validatePassword(in.Password); err != nil {
		return err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleViewer
	}
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Password:    string(hashed),
		CompanyName: strings.TrimSpace(in.CompanyName),
		Role:        role,
	}
	return u.users.Create(ctx, user)
}

// Login はユーザーを認証し、アクセストークンとリフレッシュトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
// ユーザーのセッション数が上限に達している場合、最も古いセッションを削除します。
func (u *authUsecase) Login(ctx context.Context, email, password string, meta entity.ClientMeta) (*entity.TokenPair, error) {
	user, err := u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		return nil, ErrInvalidCredentials
	}

	if err := u.enforceSessionLimit(ctx, user.ID); err != nil {
		return nil, err
	}

	session, err := u.newSession(user.ID, meta)
	if err != nil {
		return nil, err
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return u.issue(user, session)
}

// Refresh はリフレッシュトークンを検証し、セッションをローテーションして新しいトークンを返します。
// 失効済みトークンが再利用された場合は漏洩とみなし、そのユーザーの全セッションを失効させます。
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string, meta entity.ClientMeta) (*entity.TokenPair, error) {
	if !isWellFormedToken(refreshToken) {
		return nil, ErrInvalidRefreshToken
	}

	current, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if current.IsRevoked() {
		slog.WarnContext(ctx, "revoked refresh token reused, revoking all sessions", "user_id", current.UserID)
		if err := u.sessions.RevokeAllByUserID(ctx, current.UserID); err != nil {
			slog.ErrorContext(ctx, "failed to revoke sessions", "user_id", current.UserID, "error", err)
		}
		return nil, ErrSessionRevoked
	}
	if current.Expired(u.now()) {
		return nil, ErrSessionExpired
	}

	user, err := u.users.FindByID(ctx, current.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	next, err := u.newSession(user.ID, meta)
	if err != nil {
		return nil, err
	}
	if err := u.sessions.Rotate(ctx, current.ID, next); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to rotate session: %w", err)
	}

	return u.issue(user, next)
}

// Logout はリフレッシュトークンに対応するセッションを失効させます。
// 既に存在しないトークンは成功として扱います。
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	if !isWellFormedToken(refreshToken) {
		return ErrInvalidRefreshToken
	}
	if err := u.sessions.Revoke(ctx, refreshToken); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// PurgeExpiredSessions は期限切れセッションを削除し、削除件数を返します。
func (u *authUsecase) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return u.sessions.DeleteExpired(ctx)
}

func (u *authUsecase) enforceSessionLimit(ctx context.Context, userID uint) error {
	count, err := u.sessions.CountByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to count sessions: %w", err)
	}
	for ; count >= int64(u.cfg.MaxSessions); count-- {
		if err := u.sessions.DeleteOldestByUserID(ctx, userID); err != nil {
			return fmt.Errorf("failed to evict oldest session: %w", err)
		}
	}
	return nil
}

func (u *authUsecase) newSession(userID uint, meta entity.ClientMeta) (*entity.Session, error) {
	token, err := u.newToken()
	if err != nil {
		return nil, err
	}
	now := u.now()
	return &entity.Session{
		ID:        token,
		UserID:    userID,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.cfg.SessionTTL),
	}, nil
}

func (u *authUsecase) issue(user *entity.User, session *entity.Session) (*entity.TokenPair, error) {
	access, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &entity.TokenPair{
		AccessToken:  access,
		RefreshToken: session.ID,
		ExpiresIn:    int64(u.cfg.AccessTTL / time.Second),
	}, nil
}
