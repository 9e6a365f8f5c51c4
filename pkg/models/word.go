package models

// Word represents a Mandarin vocabulary entry from the static catalog.
// The pinyin is the word's unique key across all categories.
type Word struct {
	Pinyin     string   `json:"pinyin"`
	Hanzi      string   `json:"hanzi"`
	Meaning    string   `json:"meaning"`
	Notes      string   `json:"notes,omitempty"`
	Components []string `json:"components,omitempty"` // component glyphs, e.g. 好 = 女 + 子
	Category   string   `json:"category"`
}
