package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driving"
)

var similarityCmd = &cobra.Command{
	Use:   "similarity <dataset>",
	Short: "Measure semantic drift between word orders",
	Long: `Builds separate prenominal and postnominal embeddings for every adjective
from its sentence contexts and scores their cosine similarity.

Adjectives seen fewer than --min-count times in either order are excluded.
Scores are written to cosines.csv and the run is saved for the runs,
browse and mcp commands.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimilarity,
}

var flexibilityCmd = &cobra.Command{
	Use:   "flexibility <dataset>",
	Short: "Count word orders per noun and adjective",
	Long: `Counts how often every noun and adjective occurs in each order and writes
nouns_<lang>.csv, adjs_<lang>.csv and filtered_<lang>.jsonl, the pairs whose
adjective occurs in both orders.`,
	Args: cobra.ExactArgs(1),
	RunE: runFlexibility,
}

var describeCmd = &cobra.Command{
	Use:   "describe <dataset>",
	Short: "Describe the phonological forms of a dataset",
	Long: `Summarises the syllable counts of the unique adjective and noun forms of a
dataset. With --constraints, also counts the forms violating each constraint.`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	similarityCmd.Flags().Int("min-count", 0, "minimum tokens per order (default from settings)")
	similarityCmd.Flags().Int("dimensions", 0, "embedding dimensions (default from settings)")
	similarityCmd.Flags().Bool("positive", true, "clamp negative PMI values to zero")
	similarityCmd.Flags().Bool("strict-dimensions", false, "fail instead of reducing oversized dimensions")
	similarityCmd.Flags().String("out", "", "scores file (default <out-dir>/cosines.csv)")
	similarityCmd.Flags().String("embeddings", "", "also write the embeddings as JSON")
	similarityCmd.Flags().IntP("top", "n", 10, "number of least and most similar adjectives shown")
	addRunFlags(similarityCmd)

	addRunFlags(flexibilityCmd)

	describeCmd.Flags().String("constraints", "", "constraint file (TSV)")
	addRunFlags(describeCmd)

	rootCmd.AddCommand(similarityCmd, flexibilityCmd, describeCmd)
}

func runSimilarity(cmd *cobra.Command, args []string) error {
	if similarityService == nil {
		return errors.New("similarity service not configured")
	}

	cfg, err := runConfig(cmd)
	if err != nil {
		return err
	}
	if err := applySimilarityFlags(cmd, &cfg.Similarity); err != nil {
		return err
	}

	top, err := cmd.Flags().GetInt("top")
	if err != nil {
		return fmt.Errorf("getting top flag: %w", err)
	}
	opts := driving.SimilarityOptions{
		CosinesPath:    flagString(cmd, "out"),
		EmbeddingsPath: flagString(cmd, "embeddings"),
		Extremes:       top,
	}

	report, err := similarityService.Compute(cmd.Context(), cfg, args[0], opts)
	if err != nil {
		return fmt.Errorf("similarity failed: %w", err)
	}

	printSimilarityReport(cmd, report)
	return nil
}

// applySimilarityFlags overrides settings with the flags the user changed.
func applySimilarityFlags(cmd *cobra.Command, s *domain.SimilaritySettings) error {
	flags := cmd.Flags()
	if flags.Changed("min-count") {
		v, err := flags.GetInt("min-count")
		if err != nil {
			return err
		}
		s.MinTokenCount = v
	}
	if flags.Changed("dimensions") {
		v, err := flags.GetInt("dimensions")
		if err != nil {
			return err
		}
		s.Dimensions = v
	}
	if flags.Changed("positive") {
		v, err := flags.GetBool("positive")
		if err != nil {
			return err
		}
		s.PositivePPMI = v
	}
	if flags.Changed("strict-dimensions") {
		v, err := flags.GetBool("strict-dimensions")
		if err != nil {
			return err
		}
		s.StrictDimensions = v
	}
	return nil
}

func printSimilarityReport(cmd *cobra.Command, report *domain.SimilarityReport) {
	summary := report.Run.Summary
	cmd.Printf("Run %s\n", report.Run.ID)
	cmd.Printf("  %d adjectives, %d context lemmas, %d records\n",
		summary.Adjectives, summary.ContextLemmas, summary.Records)
	cmd.Printf("  %d dimensions", summary.Dimensions)
	if summary.Clamped() {
		cmd.Printf(" (%d requested)", summary.RequestedDimensions)
	}
	cmd.Println()
	if len(summary.ExplainedVariance) > 0 {
		var total float64
		for _, v := range summary.ExplainedVariance {
			total += v
		}
		cmd.Printf("  explained variance %.3f\n", total)
	}
	cmd.Printf("  scores written to %s\n", report.CosinesPath)
	if report.EmbeddingsPath != "" {
		cmd.Printf("  embeddings written to %s\n", report.EmbeddingsPath)
	}
	cmd.Println()

	cmd.Println("Least similar:")
	printScores(cmd, report.Least)
	cmd.Println()
	cmd.Println("Most similar:")
	printScores(cmd, report.Most)

	if len(report.Mixture) > 0 {
		cmd.Println()
		cmd.Println("Mixture:")
		for i, c := range report.Mixture {
			cmd.Printf("  [%d] weight %.3f  mean %+.3f  sd %.3f  (%d adjectives)\n",
				i+1, c.Weight, c.Mean, c.StdDev, c.Members)
		}
	}
}

func printScores(cmd *cobra.Command, scores []domain.SimilarityScore) {
	for _, s := range scores {
		cmd.Printf("  %-20s %+.4f\n", s.Adjective, s.Cosine)
	}
}

func runFlexibility(cmd *cobra.Command, args []string) error {
	if flexibilityService == nil {
		return errors.New("flexibility service not configured")
	}

	cfg, err := runConfig(cmd)
	if err != nil {
		return err
	}

	report, err := flexibilityService.Compute(cmd.Context(), cfg, args[0])
	if err != nil {
		return fmt.Errorf("flexibility failed: %w", err)
	}

	flexible := 0
	for _, a := range report.Adjectives {
		if a.IsFlexible() {
			flexible++
		}
	}
	cmd.Printf("%d nouns, %d adjectives (%d in both orders)\n",
		len(report.Nouns), len(report.Adjectives), flexible)
	cmd.Printf("%d pairs with a flexible adjective\n", len(report.Flexible))
	for _, p := range report.Paths {
		cmd.Printf("  wrote %s\n", p)
	}
	return nil
}

func runDescribe(cmd *cobra.Command, args []string) error {
	if describeService == nil {
		return errors.New("describe service not configured")
	}

	cfg, err := runConfig(cmd)
	if err != nil {
		return err
	}

	desc, err := describeService.Describe(cmd.Context(), cfg, args[0])
	if err != nil {
		return fmt.Errorf("describe failed: %w", err)
	}

	cmd.Printf("%d pairs\n\n", desc.Pairs)
	printFormStats(cmd, "Adjectives", desc.Adjectives)
	cmd.Println()
	printFormStats(cmd, "Nouns", desc.Nouns)
	return nil
}

func printFormStats(cmd *cobra.Command, title string, fs domain.FormStats) {
	cmd.Printf("[%s] %d unique forms\n", title, fs.Forms)
	cmd.Printf("  syllables: mean %.2f, median %.1f, mode %d (%.1f%%)\n",
		fs.Mean, fs.Median, fs.Mode, fs.ModeShare*100)
	cmd.Printf("  monosyllables: %d (%.1f%%)\n", fs.Monosyllables, fs.MonoShare*100)
	for _, c := range fs.Constraints {
		cmd.Printf("  %-20s %d (%.1f%%)\n", c.Name, c.Violations, c.Share*100)
	}
}
