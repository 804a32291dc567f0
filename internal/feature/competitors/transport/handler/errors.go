// Package handler はcompetitorsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rivalradar_backend/internal/api"
	"rivalradar_backend/internal/feature/competitors/usecase"
	jwtmw "rivalradar_backend/internal/platform/jwt"
)

// currentUser は認証済みユーザーIDを返します。取得できない場合は401を返して false を返します。
func currentUser(c *gin.Context) (uint, bool) {
	id, ok := jwtmw.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
	}
	return id, ok
}

// pathID はパスパラメータ :id を解析します。不正な場合は400を返して false を返します。
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// writeError はユースケースのエラーをHTTPステータスに変換して返します。
// 既知のエラー以外は fallback のステータスで汎用メッセージを返し、詳細は公開しません。
func writeError(c *gin.Context, err error, fallback int, msg string) {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, usecase.ErrCompetitorNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "competitor not found"})
	case errors.Is(err, usecase.ErrPrimaryAlreadyExists):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInvalidCompetitor),
		errors.Is(err, usecase.ErrInvalidCompanyName),
		errors.Is(err, usecase.ErrEmptyImage):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrImageTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrAIResponse):
		slog.WarnContext(ctx, msg, "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: msg})
	default:
		slog.ErrorContext(ctx, msg, "error", err)
		c.JSON(fallback, api.ErrorResponse{Error: msg})
	}
}
