package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRunID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid run scores URI",
			uri:      "ordo://runs/run-123/scores",
			expected: "run-123",
		},
		{
			name:     "invalid prefix",
			uri:      "file://runs/run-123/scores",
			expected: "",
		},
		{
			name:     "missing scores suffix",
			uri:      "ordo://runs/run-123",
			expected: "",
		},
		{
			name:     "nested path",
			uri:      "ordo://runs/a/b/scores",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractRunID(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleRunsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns runs successfully", func(t *testing.T) {
		server := newTestServer(t, newMockRunService())

		req := makeReadResourceRequest("ordo://runs")
		result, err := server.handleRunsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "run-1")
		assert.Contains(t, result.Contents[0].Text, "run-2")
		assert.Contains(t, result.Contents[0].Text, "dataset_it.jsonl")
	})

	t.Run("handles empty run list", func(t *testing.T) {
		server := newTestServer(t, &mockRunService{})

		req := makeReadResourceRequest("ordo://runs")
		result, err := server.handleRunsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		server := newTestServer(t, &mockRunService{err: errors.New("database error")})

		req := makeReadResourceRequest("ordo://runs")
		_, err := server.handleRunsResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing runs")
	})
}

func TestServer_handleScoresResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns scores successfully", func(t *testing.T) {
		server := newTestServer(t, newMockRunService())

		req := makeReadResourceRequest("ordo://runs/run-2/scores")
		result, err := server.handleScoresResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"adjective": "grande"`)
		assert.Contains(t, result.Contents[0].Text, `"cosine_similarity": -0.12`)
	})

	t.Run("invalid URI returns not found", func(t *testing.T) {
		server := newTestServer(t, newMockRunService())

		req := makeReadResourceRequest("ordo://invalid/uri")
		_, err := server.handleScoresResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("unknown run returns not found", func(t *testing.T) {
		server := newTestServer(t, newMockRunService())

		req := makeReadResourceRequest("ordo://runs/missing/scores")
		_, err := server.handleScoresResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("returns error on scores failure", func(t *testing.T) {
		server := newTestServer(t, &mockRunService{err: errors.New("storage error")})

		req := makeReadResourceRequest("ordo://runs/run-2/scores")
		_, err := server.handleScoresResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "getting scores")
	})
}
