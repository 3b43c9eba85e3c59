package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the corpus language, output directory, tagger service
and similarity parameters.

Settings are stored in config.toml inside the configuration directory.
Command flags override them for a single invocation.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a single setting",
	Long: `Set a single setting by key.

Keys:
  language                      corpus language code (e.g. it)
  output_dir                    directory for written artifacts
  similarity.min_token_count    minimum tokens per order
  similarity.dimensions         embedding dimensions
  similarity.positive_ppmi      clamp negative PMI values (true/false)
  similarity.strict_dimensions  fail on oversized dimensions (true/false)
  tagger.provider               spacy or stanza
  tagger.base_url               tagger service URL
  tagger.model                  tagger pipeline name
  tagger.requests_per_second    request rate limit (0 = unlimited)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure the language and tagger step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Corpus]")
	cmd.Printf("  Language: %s\n", orUnset(settings.Language))
	cmd.Printf("  Output directory: %s\n", settings.OutputDir)
	cmd.Println()

	cmd.Println("[Tagger]")
	cmd.Printf("  Provider: %s\n", settings.Tagger.Provider.Description())
	cmd.Printf("  Base URL: %s\n", settings.Tagger.BaseURL)
	model := settings.Tagger.Model
	if model == "" && settings.Language != "" {
		model = settings.Tagger.Provider.DefaultModel(settings.Language) + " (default)"
	}
	cmd.Printf("  Model: %s\n", orUnset(model))
	if settings.Tagger.RequestsPerSecond > 0 {
		cmd.Printf("  Rate limit: %g requests/s\n", settings.Tagger.RequestsPerSecond)
	} else {
		cmd.Println("  Rate limit: unlimited")
	}
	cmd.Println()

	cmd.Println("[Similarity]")
	cmd.Printf("  Minimum token count: %d\n", settings.Similarity.MinTokenCount)
	cmd.Printf("  Dimensions: %d\n", settings.Similarity.Dimensions)
	cmd.Printf("  Positive PPMI: %t\n", settings.Similarity.PositivePPMI)
	cmd.Printf("  Strict dimensions: %t\n", settings.Similarity.StrictDimensions)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s to %s\n", args[0], args[1])
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Ordo Settings Wizard")
	cmd.Println("====================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Language
	cmd.Println("Step 1: Corpus Language")
	cmd.Println("-----------------------")
	cmd.Printf("Enter language code [%s]: ", orUnset(settings.Language))
	if lang := readLine(reader); lang != "" {
		if err := settingsService.Set("language", lang); err != nil {
			return fmt.Errorf("failed to set language: %w", err)
		}
		settings.Language = lang
	}
	cmd.Println()

	// Step 2: Tagger
	cmd.Println("Step 2: Select Tagger")
	cmd.Println("---------------------")
	providers := domain.AllTaggerProviders()
	current := 1
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
		if p == settings.Tagger.Provider {
			current = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	provider := providers[parseChoice(readLine(reader), len(providers), current)-1]
	if err := settingsService.Set("tagger.provider", provider.String()); err != nil {
		return fmt.Errorf("failed to set tagger: %w", err)
	}

	cmd.Printf("Base URL [%s]: ", settings.Tagger.BaseURL)
	if url := readLine(reader); url != "" {
		if err := settingsService.Set("tagger.base_url", url); err != nil {
			return fmt.Errorf("failed to set base URL: %w", err)
		}
	}

	defaultModel := "provider default"
	if m := provider.DefaultModel(settings.Language); m != "" {
		defaultModel = m
	}
	cmd.Printf("Model [%s]: ", defaultModel)
	if model := readLine(reader); model != "" {
		if err := settingsService.Set("tagger.model", model); err != nil {
			return fmt.Errorf("failed to set model: %w", err)
		}
	}
	cmd.Println()

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
