package ai

import (
	"encoding/json"
	"github.com/myrjola/gutengraph/internal/errors"
	"github.com/myrjola/gutengraph/internal/models"
)

// decodeAnalysis parses the completion content against the shape the prompt demands.
//
// The decode is strict: the content must be a bare JSON object and both
// top-level keys must be present with array values. A response that parses but
// misses either key fails instead of defaulting to an empty slice, so that a
// drifting model surfaces loudly rather than as an empty graph.
func decodeAnalysis(content string) (models.BookAnalysis, error) {
	var payload struct {
		Characters   *[]models.Character            `json:"characters"`
		Interactions *[]models.CharacterInteraction `json:"interactions"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return models.BookAnalysis{}, errors.Wrap(err, "parse analysis JSON")
	}
	if payload.Characters == nil {
		return models.BookAnalysis{}, errors.New(`missing or non-array "characters" key`)
	}
	if payload.Interactions == nil {
		return models.BookAnalysis{}, errors.New(`missing or non-array "interactions" key`)
	}
	return models.BookAnalysis{
		Characters:   *payload.Characters,
		Interactions: *payload.Interactions,
	}, nil
}
