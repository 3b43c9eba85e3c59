// Package cli provides the cobra command tree of the ordo binary.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driving"
	"github.com/custodia-labs/ordo/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services holds the driving ports the commands call into.
type Services struct {
	Pipeline    driving.PipelineService
	Similarity  driving.SimilarityService
	Flexibility driving.FlexibilityService
	Describe    driving.DescribeService
	Runs        driving.RunService
	Settings    driving.SettingsService
}

// Bootstrap builds the services once global flags are parsed.
type Bootstrap func(configDir string) (*Services, error)

var (
	pipelineService    driving.PipelineService
	similarityService  driving.SimilarityService
	flexibilityService driving.FlexibilityService
	describeService    driving.DescribeService
	runService         driving.RunService
	settingsService    driving.SettingsService

	bootstrap Bootstrap
)

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "ordo",
	Short: "Adjective-noun word order pipeline",
	Long: `Ordo builds adjective-noun datasets from speech corpus transcripts and
analyses them.

The pipeline tags the transcripts, selects adjective-noun pairs, looks up
their phonological forms, and codes every pair against a set of phonological
constraints. The similarity command measures how far the meaning of each
adjective drifts between the prenominal and postnominal orders.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print stage progress to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.ordo)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds the services.
func SetBootstrap(fn Bootstrap) {
	bootstrap = fn
}

// SetServices installs the services directly.
func SetServices(s *Services) {
	pipelineService = s.Pipeline
	similarityService = s.Similarity
	flexibilityService = s.Flexibility
	describeService = s.Describe
	runService = s.Runs
	settingsService = s.Settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil {
		return nil
	}
	services, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(services)
	return nil
}

// addRunFlags registers the flags that override settings for one invocation.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("lang", "l", "", "corpus language code (e.g. it)")
	cmd.Flags().StringP("out-dir", "o", "", "directory for written artifacts")
}

// runConfig builds the configuration of one invocation from settings and
// the flags the command defines.
func runConfig(cmd *cobra.Command) (domain.RunConfig, error) {
	if settingsService == nil {
		return domain.RunConfig{}, errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return domain.RunConfig{}, fmt.Errorf("failed to get settings: %w", err)
	}
	cfg := domain.NewRunConfig(*settings)

	if lang := flagString(cmd, "lang"); lang != "" {
		if _, err := language.Parse(lang); err != nil {
			return domain.RunConfig{}, fmt.Errorf("language %q: %w", lang, domain.ErrInvalidInput)
		}
		cfg.Language = lang
	}
	if dir := flagString(cmd, "out-dir"); dir != "" {
		cfg.OutputDir = dir
	}
	if path := flagString(cmd, "lexicon"); path != "" {
		cfg.LexiconPath = path
	}
	if path := flagString(cmd, "constraints"); path != "" {
		cfg.ConstraintsPath = path
	}

	return cfg, nil
}

// flagString returns a string flag, or "" when the command lacks it.
func flagString(cmd *cobra.Command, name string) string {
	if cmd.Flags().Lookup(name) == nil {
		return ""
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

// printStage reports a completed stage.
func printStage(cmd *cobra.Command, r *domain.StageResult) {
	cmd.Printf("%-10s %s (%d in, %d out", r.Stage, r.Path, r.Input, r.Output)
	if r.Dropped > 0 {
		cmd.Printf(", %d dropped, %.1f%%", r.Dropped, r.DroppedShare()*100)
	}
	cmd.Println(")")
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
