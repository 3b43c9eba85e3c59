// Command ordo is the adjective-noun word order pipeline.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/custodia-labs/ordo/internal/adapters/driven/artifacts/file"
	configfile "github.com/custodia-labs/ordo/internal/adapters/driven/config/file"
	constraintsfile "github.com/custodia-labs/ordo/internal/adapters/driven/constraints/file"
	"github.com/custodia-labs/ordo/internal/adapters/driven/corpus/commonvoice"
	lexiconfile "github.com/custodia-labs/ordo/internal/adapters/driven/lexicon/file"
	"github.com/custodia-labs/ordo/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/ordo/internal/adapters/driven/watcher"
	"github.com/custodia-labs/ordo/internal/adapters/driving/cli"
	"github.com/custodia-labs/ordo/internal/core/services"
	"github.com/custodia-labs/ordo/internal/taggers"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	var store io.Closer

	cli.SetVersion(version)
	cli.SetBootstrap(func(configDir string) (*cli.Services, error) {
		s, closer, err := buildServices(configDir)
		store = closer
		return s, err
	})

	err := cli.Execute()
	if store != nil {
		_ = store.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

// buildServices wires the adapters into the core services.
func buildServices(configDir string) (*cli.Services, io.Closer, error) {
	configStore, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}

	var dataDir string
	if configDir != "" {
		dataDir = filepath.Join(configDir, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}

	artifacts := file.NewStore()
	constraints := constraintsfile.NewLoader()

	pipeline := services.NewPipelineService(
		commonvoice.NewReader(),
		taggers.NewDefaultRegistry(),
		artifacts,
		lexiconfile.NewLoader(),
		constraints,
	)
	pipeline.SetTagCache(store.TagCache())
	pipeline.SetWatcher(watcher.New())

	runStore := store.RunStore()

	return &cli.Services{
		Pipeline:    pipeline,
		Similarity:  services.NewSimilarityService(artifacts, runStore),
		Flexibility: services.NewFlexibilityService(artifacts),
		Describe:    services.NewDescribeService(artifacts, constraints),
		Runs:        services.NewRunService(runStore),
		Settings:    services.NewSettingsService(configStore),
	}, store, nil
}
