package entity

// DetectedLogo は画像から検出されたロゴを表します。
type DetectedLogo struct {
	Name       string  // 検出された企業名
	Confidence float32 // 信頼度スコア（0.0 ~ 1.0）
}

// Identification は検出されたロゴと、それに一致した登録済み企業の組です。
// 一致する企業がない場合 Competitor は nil です。
type Identification struct {
	Logo       DetectedLogo
	Competitor *Competitor
}
