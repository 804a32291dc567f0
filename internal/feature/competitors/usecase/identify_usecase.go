package usecase

import (
	"context"
	"fmt"
	"strings"

	"rivalradar_backend/internal/feature/competitors/domain/entity"
)

// identifyUsecase は画像のロゴから登録済み企業を特定します。
type identifyUsecase struct {
	detector    LogoDetector
	competitors CompetitorRepository
}

// NewIdentifyUsecase はidentifyUsecaseの新しいインスタンスを生成します。
func NewIdentifyUsecase(detector LogoDetector, competitors CompetitorRepository) *identifyUsecase {
	return &identifyUsecase{detector: detector, competitors: competitors}
}

// Identify は画像からロゴを検出し、ユーザーの登録企業と照合します。
// 照合は完全一致を優先し、次に大文字小文字を無視した一致を試みます。
func (u *identifyUsecase) Identify(ctx context.Context, ownerID uint, imageData []byte) ([]entity.Identification, error) {
	if len(imageData) == 0 {
		return nil, ErrEmptyImage
	}
	if len(imageData) > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	logos, err := u.detector.DetectLogos(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("failed to detect logos: %w", err)
	}
	if len(logos) == 0 {
		return []entity.Identification{}, nil
	}

	list, err := u.competitors.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitors: %w", err)
	}

	out := make([]entity.Identification, 0, len(logos))
	for _, l := range logos {
		out = append(out, entity.Identification{Logo: l, Competitor: matchCompetitor(l.Name, list)})
	}
	return out, nil
}

func matchCompetitor(name string, list []entity.Competitor) *entity.Competitor {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for i := range list {
		if list[i].Name == name {
			c := list[i]
			return &c
		}
	}
	for i := range list {
		if strings.EqualFold(list[i].Name, name) {
			c := list[i]
			return &c
		}
	}
	return nil
}
