package usecase

import (
	"fmt"
	"strings"

	"rivalradar_backend/internal/feature/competitors/domain/entity"
)

// analysisPrompt は競合分析用のプロンプトを組み立てます。
// categories はAIにスコアを求める評価カテゴリです。
func analysisPrompt(c entity.Competitor, categories []string) string {
	var b strings.Builder
	b.WriteString("Analyze the following competitor and provide insights.\n")
	fmt.Fprintf(&b, "Name: %s\n", c.Name)
	fmt.Fprintf(&b, "Description: %s\n", c.Description)
	fmt.Fprintf(&b, "Website: %s\n", c.Website)
	fmt.Fprintf(&b, "Features: %s\n", strings.Join(c.Features, ", "))
	fmt.Fprintf(&b, "Market Position: %s\n\n", c.MarketPosition)
	b.WriteString("Provide key strengths, weaknesses, market opportunities and potential threats,\n")
	b.WriteString("an estimated market share in percent (0-100), a sentiment score (0-1),\n")
	if len(categories) > 0 {
		fmt.Fprintf(&b, "a score from 0 to 100 for each of these categories: %s,\n", strings.Join(categories, ", "))
	}
	b.WriteString("and a short summary of the competitive position.")
	return b.String()
}

// researchPrompt はAI企業調査用のプロンプトを組み立てます。
func researchPrompt(name string) string {
	return fmt.Sprintf(
		"Research the company %q. Return its official name, a one-paragraph description, "+
			"its official website URL, up to 10 notable product features, "+
			"and a short market position label such as Leader, Challenger, Niche or Emerging.", name)
}
