package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"rivalradar_backend/internal/api"
	"rivalradar_backend/internal/feature/competitors/domain/entity"
	"rivalradar_backend/internal/feature/competitors/transport/http/dto"
	"rivalradar_backend/internal/feature/competitors/usecase"
)

// IdentifyUsecase はロゴ画像から企業を特定するユースケースを定義します。
type IdentifyUsecase interface {
	Identify(ctx context.Context, ownerID uint, imageData []byte) ([]entity.Identification, error)
}

// IdentifyHandler はロゴ画像による企業特定のHTTPリクエストを処理します。
type IdentifyHandler struct {
	uc IdentifyUsecase
}

// NewIdentifyHandler はIdentifyHandlerの新しいインスタンスを生成します。
func NewIdentifyHandler(uc IdentifyUsecase) *IdentifyHandler {
	return &IdentifyHandler{uc: uc}
}

// Identify は画像をアップロードしてロゴを検出し、登録済み企業と照合します。
//
// エンドポイント: POST /competitors/identify
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *IdentifyHandler) Identify(c *gin.Context) {
	ctx := c.Request.Context()
	owner, ok := currentUser(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		slog.WarnContext(ctx, "画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "画像ファイルが必要です"})
		return
	}
	if file.Size > usecase.MaxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, api.ErrorResponse{Error: usecase.ErrImageTooLarge.Error()})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.ErrorContext(ctx, "画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.WarnContext(ctx, "画像ファイルのクローズに失敗", "error", err)
		}
	}()

	// 上限+1バイトまで読み、超過はユースケースで検出する
	imageData, err := io.ReadAll(io.LimitReader(f, usecase.MaxImageSize+1))
	if err != nil {
		slog.ErrorContext(ctx, "画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}

	ids, err := h.uc.Identify(ctx, owner, imageData)
	if err != nil {
		writeError(c, err, http.StatusBadGateway, "ロゴ検出に失敗しました")
		return
	}
	c.JSON(http.StatusOK, dto.NewIdentificationList(ids))
}
