package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

var runsJSON bool

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage saved similarity runs",
	Long:  `List, inspect and delete the similarity runs saved by the similarity command.`,
	RunE:  runRunsList,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved runs, newest first",
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show a run and its scores",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a run and its scores",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsDelete,
}

var runsLookupCmd = &cobra.Command{
	Use:   "lookup <adjective> [run-id]",
	Short: "Show the similarity of one adjective",
	Long:  `Shows the similarity score of an adjective in a run, the latest run by default.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runRunsLookup,
}

func init() {
	runsListCmd.Flags().BoolVar(&runsJSON, "json", false, "output runs as JSON")
	runsShowCmd.Flags().BoolVar(&runsJSON, "json", false, "output scores as JSON")
	runsCmd.AddCommand(runsListCmd, runsShowCmd, runsDeleteCmd, runsLookupCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRunsList(cmd *cobra.Command, _ []string) error {
	if runService == nil {
		return errors.New("run service not configured")
	}

	runs, err := runService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if runsJSON {
		return outputJSON(cmd, runs)
	}

	if len(runs) == 0 {
		cmd.Println("No runs saved. Run 'ordo similarity <dataset>' first.")
		return nil
	}

	for i := range runs {
		r := &runs[i]
		cmd.Printf("%s  %s  %-4s  %d adjectives  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), orUnset(r.Language), r.Summary.Adjectives, r.Input)
	}
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	if runService == nil {
		return errors.New("run service not configured")
	}

	run, err := runService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}
	scores, err := runService.Scores(cmd.Context(), run.ID)
	if err != nil {
		return fmt.Errorf("failed to get scores: %w", err)
	}

	if runsJSON {
		return outputJSON(cmd, scores)
	}

	cmd.Printf("Run %s\n", run.ID)
	cmd.Printf("  Created: %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Language: %s\n", orUnset(run.Language))
	cmd.Printf("  Input: %s\n", run.Input)
	cmd.Printf("  Settings: min count %d, %d dimensions, positive PPMI %t\n",
		run.Settings.MinTokenCount, run.Settings.Dimensions, run.Settings.PositivePPMI)
	cmd.Printf("  Summary: %d adjectives, %d context lemmas, %d records, %d dimensions\n",
		run.Summary.Adjectives, run.Summary.ContextLemmas, run.Summary.Records, run.Summary.Dimensions)
	cmd.Println()
	printScores(cmd, scores)
	return nil
}

func runRunsDelete(cmd *cobra.Command, args []string) error {
	if runService == nil {
		return errors.New("run service not configured")
	}

	if err := runService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	cmd.Printf("Deleted run %s\n", args[0])
	return nil
}

func runRunsLookup(cmd *cobra.Command, args []string) error {
	if runService == nil {
		return errors.New("run service not configured")
	}

	var runID string
	if len(args) > 1 {
		runID = args[1]
	}

	score, err := runService.Lookup(cmd.Context(), runID, args[0])
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Printf("No score for %q.\n", args[0])
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	printScores(cmd, []domain.SimilarityScore{*score})
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
