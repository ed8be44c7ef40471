package main

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
)

func Test_bookText(t *testing.T) {
	client := startTestServer(t, aliceAnalysis)
	ctx := context.Background()

	t.Run("book with plain text", func(t *testing.T) {
		var response bookTextResponse
		status, err := client.GetJSON(ctx, "/api/text/11", &response)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, aliceText, response.Text)
	})

	t.Run("book without plain text", func(t *testing.T) {
		var response errorResponse
		status, err := client.GetJSON(ctx, "/api/text/66", &response)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Failed to fetch book text. Text format not available.", response.Error)
	})
}
