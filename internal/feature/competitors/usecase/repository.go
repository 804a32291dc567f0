// Package usecase はcompetitorsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"rivalradar_backend/internal/feature/competitors/domain/entity"
)

// CompetitorRepository は企業エンティティの永続化層を抽象化します。
// すべての操作は所有ユーザーでスコープされます。
type CompetitorRepository interface {
	// ListByOwner はユーザーの企業を更新日時の降順で返します。
	ListByOwner(ctx context.Context, ownerID uint) ([]entity.Competitor, error)
	// FindByID は企業を1件返します。存在しない場合 ErrCompetitorNotFound を返します。
	FindByID(ctx context.Context, ownerID, id uint) (*entity.Competitor, error)
	// FindPrimary はユーザー自身の企業を返します。存在しない場合 ErrCompetitorNotFound を返します。
	FindPrimary(ctx context.Context, ownerID uint) (*entity.Competitor, error)
	// Create は企業を登録します。主企業の重複は ErrPrimaryAlreadyExists になります。
	Create(ctx context.Context, c *entity.Competitor) error
	// Update は企業を更新します。
	Update(ctx context.Context, c *entity.Competitor) error
	// Delete は企業とその分析を削除します。
	Delete(ctx context.Context, ownerID, id uint) error
	// RecordAnalysis は分析結果を保存し、企業の最終分析日時を a.AnalysisDate に更新します。
	// 両方の書き込みは1つのトランザクションで行われます。
	RecordAnalysis(ctx context.Context, a *entity.Analysis) error
}

// AnalysisRepository は分析結果の永続化層を抽象化します。
type AnalysisRepository interface {
	// ListByCompetitor は企業の分析を新しい順に返します。
	ListByCompetitor(ctx context.Context, ownerID, competitorID uint) ([]entity.Analysis, error)
	// Recent はユーザーの分析を新しい順に最大 limit 件返します。
	Recent(ctx context.Context, ownerID uint, limit int) ([]entity.Analysis, error)
	// LatestPerCompetitor は企業IDごとの最新の分析を返します。
	LatestPerCompetitor(ctx context.Context, ownerID uint) (map[uint]entity.Analysis, error)
}

// InsightGenerator はAIによる分析と企業調査を行います。
type InsightGenerator interface {
	// GenerateAnalysis はプロンプトから構造化された分析結果を生成します。
	GenerateAnalysis(ctx context.Context, prompt string) (*entity.AnalysisResult, error)
	// ResearchCompany はプロンプトから企業プロフィールを生成します。
	ResearchCompany(ctx context.Context, prompt string) (*entity.CompanyProfile, error)
}

// LogoDetector は画像からロゴを検出するインターフェースです。
type LogoDetector interface {
	// DetectLogos は画像バイト列からロゴを検出し、検出結果を返します。
	DetectLogos(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error)
}
