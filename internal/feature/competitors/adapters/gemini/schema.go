package gemini

import "google.golang.org/genai"

func stringList(desc string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Description: desc,
		Items:       &genai.Schema{Type: genai.TypeString},
	}
}

func number(desc string, lo, hi float64) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeNumber,
		Description: desc,
		Minimum:     genai.Ptr(lo),
		Maximum:     genai.Ptr(hi),
		Nullable:    genai.Ptr(true),
	}
}

// analysisSchema は analysisPayload に対応するレスポンススキーマです。
var analysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"strengths":       stringList("Key strengths"),
		"weaknesses":      stringList("Key weaknesses"),
		"opportunities":   stringList("Market opportunities"),
		"threats":         stringList("Potential threats"),
		"market_share":    number("Estimated market share in percent", 0, 100),
		"sentiment_score": number("Overall market sentiment", 0, 1),
		"metrics": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category": {Type: genai.TypeString},
					"score":    {Type: genai.TypeNumber, Minimum: genai.Ptr(0.0), Maximum: genai.Ptr(100.0)},
				},
				Required: []string{"category", "score"},
			},
		},
		"summary": {Type: genai.TypeString, Description: "Short summary of the competitive position"},
	},
	Required: []string{"strengths", "weaknesses", "opportunities", "threats", "summary"},
}

// profileSchema は profilePayload に対応するレスポンススキーマです。
var profileSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":            {Type: genai.TypeString},
		"description":     {Type: genai.TypeString},
		"website":         {Type: genai.TypeString},
		"features":        stringList("Notable product features"),
		"market_position": {Type: genai.TypeString},
	},
	Required: []string{"name", "description", "features", "market_position"},
}
