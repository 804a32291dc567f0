// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"rivalradar_backend/internal/api"
	"rivalradar_backend/internal/feature/auth/domain/entity"
	"rivalradar_backend/internal/feature/auth/transport/http/dto"
	"rivalradar_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は新規ユーザーを登録します。
	Signup(ctx context.Context, in usecase.SignupInput) error
	// Login はユーザーを認証し、トークンペアを返します。
	Login(ctx context.Context, email, password string, meta entity.ClientMeta) (*entity.TokenPair, error)
	// Refresh はリフレッシュトークンをローテーションします。
	Refresh(ctx context.Context, refreshToken string, meta entity.ClientMeta) (*entity.TokenPair, error)
	// Logout はセッションを失効させます。
	Logout(ctx context.Context, refreshToken string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func clientMeta(c *gin.Context) entity.ClientMeta {
	return entity.ClientMeta{UserAgent: c.Request.UserAgent(), IPAddress: c.ClientIP()}
}

func tokenRes(p *entity.TokenPair) dto.TokenRes {
	return dto.TokenRes{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    p.ExpiresIn,
	}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - ユーザー作成失敗時（メール重複等）は409を返却
// - 成功時は201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	err := h.auth.Signup(ctx, usecase.SignupInput{
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
		Role:        entity.Role(req.Role),
	})
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.WarnContext(ctx, "signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "signup failed"})
		return
	}
	slog.InfoContext(ctx, "user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// 認証失敗時は理由を問わず401を返却します。
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	pair, err := h.auth.Login(ctx, req.Email, req.Password, clientMeta(c))
	if err != nil {
		slog.WarnContext(ctx, "login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		return
	}
	slog.InfoContext(ctx, "user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, tokenRes(pair))
}

// Refresh はリフレッシュトークンで新しいトークンペアを発行します。
func (h *AuthHandler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.RefreshTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	pair, err := h.auth.Refresh(ctx, req.RefreshToken, clientMeta(c))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRefreshToken),
			errors.Is(err, usecase.ErrSessionExpired),
			errors.Is(err, usecase.ErrSessionRevoked):
			slog.WarnContext(ctx, "refresh rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid refresh token"})
		default:
			slog.ErrorContext(ctx, "refresh failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, tokenRes(pair))
}

// Logout はセッションを失効させます。
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.RefreshTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Logout(ctx, req.RefreshToken); err != nil {
		if errors.Is(err, usecase.ErrInvalidRefreshToken) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid refresh token"})
			return
		}
		slog.ErrorContext(ctx, "logout failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "logged out"})
}
