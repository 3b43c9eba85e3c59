package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driving"
)

// MockPipelineService implements driving.PipelineService for testing.
type MockPipelineService struct {
	Configs   []domain.RunConfig
	Paths     []string
	Cascade   driving.CascadeRequest
	Err       error
	Reruns    int
	WatchErrs []error
}

func (m *MockPipelineService) stage(name string, cfg domain.RunConfig, path string) (*domain.StageResult, error) {
	m.Configs = append(m.Configs, cfg)
	m.Paths = append(m.Paths, path)
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.StageResult{
		Stage:   name,
		Path:    cfg.OutputDir + "/" + name + "_" + cfg.Label(),
		Input:   4,
		Output:  3,
		Dropped: 1,
	}, nil
}

func (m *MockPipelineService) Tag(_ context.Context, cfg domain.RunConfig, corpusDir string) (*domain.StageResult, error) {
	return m.stage("tag", cfg, corpusDir)
}

func (m *MockPipelineService) Select(_ context.Context, cfg domain.RunConfig, path string) (*domain.StageResult, error) {
	return m.stage("select", cfg, path)
}

func (m *MockPipelineService) Pronounce(_ context.Context, cfg domain.RunConfig, path string) (*domain.StageResult, error) {
	return m.stage("pforms", cfg, path)
}

func (m *MockPipelineService) Code(_ context.Context, cfg domain.RunConfig, path string) (*domain.StageResult, error) {
	return m.stage("code", cfg, path)
}

func (m *MockPipelineService) WatchCode(
	_ context.Context, cfg domain.RunConfig, path string, onCode func(*domain.StageResult, error),
) error {
	for i := 0; i < m.Reruns; i++ {
		onCode(m.stage("code", cfg, path))
	}
	for _, err := range m.WatchErrs {
		onCode(nil, err)
	}
	return nil
}

func (m *MockPipelineService) Run(
	_ context.Context, cfg domain.RunConfig, req driving.CascadeRequest,
) ([]domain.StageResult, error) {
	m.Configs = append(m.Configs, cfg)
	m.Cascade = req
	results := []domain.StageResult{
		{Stage: "pforms", Path: "out/dataset_it.jsonl", Input: 3, Output: 3},
		{Stage: "code", Path: "out/output_it.csv", Input: 3, Output: 3},
	}
	if m.Err != nil {
		return results[:1], m.Err
	}
	return results, nil
}

// MockSimilarityService implements driving.SimilarityService for testing.
type MockSimilarityService struct {
	Config domain.RunConfig
	Opts   driving.SimilarityOptions
	Err    error
}

func (m *MockSimilarityService) Compute(
	_ context.Context, cfg domain.RunConfig, _ string, opts driving.SimilarityOptions,
) (*domain.SimilarityReport, error) {
	m.Config = cfg
	m.Opts = opts
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.SimilarityReport{
		Run: domain.Run{
			ID: "run-1",
			Summary: domain.RunSummary{
				Adjectives:          2,
				ContextLemmas:       9,
				Records:             40,
				Dimensions:          4,
				RequestedDimensions: 128,
				ExplainedVariance:   []float64{0.5, 0.25},
			},
		},
		Least:       []domain.SimilarityScore{{Adjective: "rosso", Cosine: 0.02}},
		Most:        []domain.SimilarityScore{{Adjective: "grande", Cosine: 0.99}},
		Mixture:     []domain.MixtureComponent{{Weight: 0.5, Mean: 0.1, StdDev: 0.05, Members: 1}},
		CosinesPath: "out/cosines.csv",
	}, nil
}

// MockFlexibilityService implements driving.FlexibilityService for testing.
type MockFlexibilityService struct{}

func (m *MockFlexibilityService) Compute(
	_ context.Context, cfg domain.RunConfig, _ string,
) (*domain.FlexibilityReport, error) {
	return &domain.FlexibilityReport{
		Nouns: []domain.OrderStats{{Lemma: "casa", Prenominal: 2}},
		Adjectives: []domain.OrderStats{
			{Lemma: "bello", Prenominal: 1, Postnominal: 1},
			{Lemma: "rosso", Postnominal: 1},
		},
		Flexible: []domain.PairToken{{}, {}},
		Paths:    []string{cfg.OutputDir + "/nouns_it.csv", cfg.OutputDir + "/adjs_it.csv"},
	}, nil
}

// MockDescribeService implements driving.DescribeService for testing.
type MockDescribeService struct{}

func (m *MockDescribeService) Describe(_ context.Context, _ domain.RunConfig, _ string) (*domain.Description, error) {
	return &domain.Description{
		Pairs: 3,
		Adjectives: domain.FormStats{
			Forms: 2, Mean: 2.5, Median: 2.5, Mode: 2, ModeShare: 0.5,
			Constraints: []domain.ConstraintStats{{Name: "hiatus", Violations: 1, Share: 0.5}},
		},
		Nouns: domain.FormStats{Forms: 1, Mean: 3, Median: 3, Mode: 3, ModeShare: 1},
	}, nil
}

// MockRunService implements driving.RunService for testing.
type MockRunService struct {
	Runs    []domain.Run
	Deleted []string
}

func (m *MockRunService) List(_ context.Context) ([]domain.Run, error) {
	return m.Runs, nil
}

func (m *MockRunService) Get(_ context.Context, id string) (*domain.Run, error) {
	for i := range m.Runs {
		if m.Runs[i].ID == id {
			return &m.Runs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockRunService) Latest(_ context.Context) (*domain.Run, error) {
	if len(m.Runs) == 0 {
		return nil, domain.ErrNotFound
	}
	return &m.Runs[0], nil
}

func (m *MockRunService) Scores(_ context.Context, _ string) ([]domain.SimilarityScore, error) {
	return []domain.SimilarityScore{
		{Adjective: "grande", Cosine: 0.91},
		{Adjective: "nuovo", Cosine: -0.12},
	}, nil
}

func (m *MockRunService) Lookup(_ context.Context, _, adjective string) (*domain.SimilarityScore, error) {
	if adjective != "grande" {
		return nil, domain.ErrNotFound
	}
	return &domain.SimilarityScore{Adjective: "grande", Cosine: 0.91}, nil
}

func (m *MockRunService) Delete(_ context.Context, id string) error {
	if _, err := m.Get(context.Background(), id); err != nil {
		return err
	}
	m.Deleted = append(m.Deleted, id)
	return nil
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	Settings    domain.AppSettings
	Stored      map[string]string
	ValidateErr error
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.Settings
	return &s, nil
}

func (m *MockSettingsService) Save(settings *domain.AppSettings) error {
	m.Settings = *settings
	return nil
}

func (m *MockSettingsService) Set(key, value string) error {
	if key == "similarity.dimensions" && value == "0" {
		return domain.ErrInvalidInput
	}
	m.Stored[key] = value
	return nil
}

func (m *MockSettingsService) Keys() []string {
	return []string{"language", "tagger.provider"}
}

func (m *MockSettingsService) Validate() error {
	return m.ValidateErr
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

type testServices struct {
	pipeline   *MockPipelineService
	similarity *MockSimilarityService
	runs       *MockRunService
	settings   *MockSettingsService
}

// setupTestServices installs mock services and returns them with a cleanup.
func setupTestServices() (*testServices, func()) {
	settings := domain.DefaultAppSettings()
	settings.Language = "it"
	settings.OutputDir = "out"

	ts := &testServices{
		pipeline:   &MockPipelineService{},
		similarity: &MockSimilarityService{},
		runs: &MockRunService{Runs: []domain.Run{
			{ID: "run-2", Language: "it", Input: "dataset_it.jsonl",
				CreatedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)},
			{ID: "run-1", Language: "it", Input: "dataset_it.jsonl",
				CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		}},
		settings: &MockSettingsService{Settings: settings, Stored: map[string]string{}},
	}
	SetServices(&Services{
		Pipeline:    ts.pipeline,
		Similarity:  ts.similarity,
		Flexibility: &MockFlexibilityService{},
		Describe:    &MockDescribeService{},
		Runs:        ts.runs,
		Settings:    ts.settings,
	})
	return ts, func() { SetServices(&Services{}) }
}

// execute runs the root command with args and stdin, returning its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		runsJSON = false
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag of the command tree to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
