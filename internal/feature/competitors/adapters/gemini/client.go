package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"rivalradar_backend/internal/feature/competitors/domain/entity"
	"rivalradar_backend/internal/feature/competitors/usecase"
	"rivalradar_backend/internal/shared/ratelimiter"
)

const (
	opAnalyze  = "analyze"
	opResearch = "research"
)

// Observer はAI呼び出しの結果を記録します。
type Observer interface {
	ObserveAICall(operation string, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveAICall(string, error) {}

// GeminiClient はGoogle Gemini APIを使用して競合分析と企業調査を行います。
type GeminiClient struct {
	client   *genai.Client
	model    string
	limiter  ratelimiter.Limiter
	observer Observer
}

// GeminiClientがInsightGeneratorを実装していることをコンパイル時に検証します。
var _ usecase.InsightGenerator = (*GeminiClient)(nil)

// NewGeminiClient はGeminiClientの新しいインスタンスを生成します。
// observer が nil の場合は記録しません。
func NewGeminiClient(ctx context.Context, cfg Config, httpClient *http.Client, observer Observer) (*GeminiClient, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		HTTPClient: httpClient,
	}
	if cfg.APIKey != "" {
		cc.Backend = genai.BackendGeminiAPI
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &GeminiClient{
		client:   client,
		model:    model,
		limiter:  ratelimiter.NewRateLimiter("gemini", cfg.RequestsPerMinute, time.Minute),
		observer: observer,
	}, nil
}

type metricPayload struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

type analysisPayload struct {
	Strengths      []string        `json:"strengths"`
	Weaknesses     []string        `json:"weaknesses"`
	Opportunities  []string        `json:"opportunities"`
	Threats        []string        `json:"threats"`
	MarketShare    *float64        `json:"market_share"`
	SentimentScore *float64        `json:"sentiment_score"`
	Metrics        []metricPayload `json:"metrics"`
	Summary        string          `json:"summary"`
}

type profilePayload struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Website        string   `json:"website"`
	Features       []string `json:"features"`
	MarketPosition string   `json:"market_position"`
}

// GenerateAnalysis はプロンプトから構造化された競合分析を生成します。
func (g *GeminiClient) GenerateAnalysis(ctx context.Context, prompt string) (*entity.AnalysisResult, error) {
	var p analysisPayload
	if err := g.generate(ctx, opAnalyze, prompt, analysisSchema, &p); err != nil {
		return nil, err
	}

	var metrics map[string]float64
	if len(p.Metrics) > 0 {
		metrics = make(map[string]float64, len(p.Metrics))
		for _, m := range p.Metrics {
			metrics[m.Category] = m.Score
		}
	}
	return &entity.AnalysisResult{
		Strengths:      p.Strengths,
		Weaknesses:     p.Weaknesses,
		Opportunities:  p.Opportunities,
		Threats:        p.Threats,
		MarketShare:    p.MarketShare,
		SentimentScore: p.SentimentScore,
		Metrics:        metrics,
		Summary:        p.Summary,
	}, nil
}

// ResearchCompany はプロンプトから企業プロフィールを生成します。
func (g *GeminiClient) ResearchCompany(ctx context.Context, prompt string) (*entity.CompanyProfile, error) {
	var p profilePayload
	if err := g.generate(ctx, opResearch, prompt, profileSchema, &p); err != nil {
		return nil, err
	}
	return &entity.CompanyProfile{
		Name:           p.Name,
		Description:    p.Description,
		Website:        p.Website,
		Features:       p.Features,
		MarketPosition: p.MarketPosition,
	}, nil
}

// generate はJSONスキーマ付きでコンテンツを生成し、out にデコードします。
func (g *GeminiClient) generate(ctx context.Context, op, prompt string, schema *genai.Schema, out any) (err error) {
	defer func() { g.observer.ObserveAICall(op, err) }()

	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("gemini rate limit wait: %w", err)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return fmt.Errorf("gemini API request failed: %w", err)
	}

	text := stripCodeFence(resp.Text())
	if text == "" {
		return fmt.Errorf("%w: empty response", usecase.ErrAIResponse)
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrAIResponse, err)
	}
	return nil
}

// stripCodeFence はMarkdownのコードブロックで囲まれた応答から本文を取り出します。
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
