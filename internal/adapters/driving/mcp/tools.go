package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

// defaultRunsLimit is the number of runs listed when no limit is given.
const defaultRunsLimit = 20

// SimilarityInput is the input schema for the similarity tool.
type SimilarityInput struct {
	Adjective string `json:"adjective" jsonschema:"the adjective lemma to look up"`
	RunID     string `json:"run_id,omitempty" jsonschema:"the run to read (default: the latest run)"`
}

// SimilarityOutput is the output schema for the similarity tool.
type SimilarityOutput struct {
	Adjective string  `json:"adjective"`
	RunID     string  `json:"run_id"`
	Found     bool    `json:"found"`
	Cosine    float64 `json:"cosine_similarity"`
}

// RunsInput is the input schema for the runs tool.
type RunsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of runs to return (default 20)"`
}

// RunsOutput is the output schema for the runs tool.
type RunsOutput struct {
	Runs  []RunOutput `json:"runs"`
	Count int         `json:"count"`
}

// RunOutput represents a single saved run.
type RunOutput struct {
	ID         string    `json:"id"`
	Language   string    `json:"language"`
	Input      string    `json:"input"`
	Adjectives int       `json:"adjectives"`
	Dimensions int       `json:"dimensions"`
	CreatedAt  time.Time `json:"created_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "similarity",
		Description: "Cosine similarity between the prenominal and postnominal " +
			"meaning of an adjective in a saved run",
	}, s.handleSimilarity)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "runs",
		Description: "List saved similarity runs, newest first",
	}, s.handleRuns)
}

// handleSimilarity handles the similarity tool invocation.
func (s *Server) handleSimilarity(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SimilarityInput,
) (*mcp.CallToolResult, SimilarityOutput, error) {
	if input.Adjective == "" {
		return nil, SimilarityOutput{}, errors.New("adjective is required")
	}

	runID := input.RunID
	if runID == "" {
		latest, err := s.ports.Runs.Latest(ctx)
		if err != nil {
			return nil, SimilarityOutput{}, err
		}
		runID = latest.ID
	}

	output := SimilarityOutput{Adjective: input.Adjective, RunID: runID}
	score, err := s.ports.Runs.Lookup(ctx, runID, input.Adjective)
	if errors.Is(err, domain.ErrNotFound) {
		if _, runErr := s.ports.Runs.Get(ctx, runID); runErr != nil {
			return nil, SimilarityOutput{}, runErr
		}
		return nil, output, nil
	}
	if err != nil {
		return nil, SimilarityOutput{}, err
	}

	output.Adjective = score.Adjective
	output.Found = true
	output.Cosine = score.Cosine
	return nil, output, nil
}

// handleRuns handles the runs tool invocation.
func (s *Server) handleRuns(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RunsInput,
) (*mcp.CallToolResult, RunsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultRunsLimit
	}

	runs, err := s.ports.Runs.List(ctx)
	if err != nil {
		return nil, RunsOutput{}, err
	}
	if len(runs) > limit {
		runs = runs[:limit]
	}

	output := RunsOutput{
		Runs:  make([]RunOutput, len(runs)),
		Count: len(runs),
	}
	for i := range runs {
		output.Runs[i] = runOutput(&runs[i])
	}

	return nil, output, nil
}

func runOutput(r *domain.Run) RunOutput {
	return RunOutput{
		ID:         r.ID,
		Language:   r.Language,
		Input:      r.Input,
		Adjectives: r.Summary.Adjectives,
		Dimensions: r.Summary.Dimensions,
		CreatedAt:  r.CreatedAt,
	}
}
