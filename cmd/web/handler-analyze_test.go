package main

import (
	"context"
	"github.com/myrjola/gutengraph/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
)

func Test_analyzeBook(t *testing.T) {
	ctx := context.Background()

	t.Run("full pipeline", func(t *testing.T) {
		client := startTestServer(t, aliceAnalysis)

		var result models.AnalysisResult
		status, err := client.GetJSON(ctx, "/api/analyze/11", &result)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Alice's Adventures in Wonderland", result.Metadata.Title)
		assert.Equal(t, aliceText, result.Text)
		require.Len(t, result.Characters, 1)
		assert.Equal(t, "Alice", result.Characters[0].Name)
		assert.Equal(t, "main", result.Characters[0].Importance)
		assert.Empty(t, result.Interactions)
	})

	t.Run("book without plain text fails the whole request", func(t *testing.T) {
		client := startTestServer(t, aliceAnalysis)

		var response errorResponse
		status, err := client.GetJSON(ctx, "/api/analyze/66", &response)
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Contains(t, response.Error, "Failed to process book")
	})
}
