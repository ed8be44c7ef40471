package models

// Character is a named character extracted from a book by the analysis model.
type Character struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases"`
	Description string   `json:"description"`
	// Importance is one of "main", "secondary" or "minor". The model is instructed
	// to stick to those three but the value is not validated; renderers treat
	// anything else as "minor".
	Importance string `json:"importance"`
}

// CharacterInteraction is a pairwise relationship between two characters.
// Character1 and Character2 are expected to match Character.Name values but
// that is not enforced.
type CharacterInteraction struct {
	Character1   string `json:"character1"`
	Character2   string `json:"character2"`
	Relationship string `json:"relationship"`
	// Nature is a free-text category such as "allies", "enemies", "family" or "romantic".
	Nature string `json:"nature"`
	// Significance is in the intended range 1-10 (10 = most significant), unenforced.
	Significance int `json:"significance"`
}

// BookAnalysis is the structured result of one analysis pass over a book text.
type BookAnalysis struct {
	Characters   []Character            `json:"characters"`
	Interactions []CharacterInteraction `json:"interactions"`
}

// AnalysisResult combines the scraped metadata, the raw text and the analysis
// for one book. It lives for a single request and is never persisted.
type AnalysisResult struct {
	Metadata     BookMetadata           `json:"metadata"`
	Text         string                 `json:"text"`
	Characters   []Character            `json:"characters"`
	Interactions []CharacterInteraction `json:"interactions"`
}
