package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driving"
)

var runCmd = &cobra.Command{
	Use:   "run [corpus-dir]",
	Short: "Run the pipeline from corpus to coded output",
	Long: `Runs every stage downstream of the given entry point: tagging, target
selection, phonological forms and constraint coding.

The entry point is the latest artifact given. Pass a corpus directory to
start from scratch, or --tagged, --targets or --dataset to resume from an
existing artifact.

Examples:
  ordo run cv-corpus-17.0 --lang it --lexicon it.csv --constraints it.tsv
  ordo run --dataset dataset_it.jsonl --constraints it.tsv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCascade,
}

var tagCmd = &cobra.Command{
	Use:   "tag <corpus-dir>",
	Short: "Tag corpus transcripts",
	Long: `Tags and lemmatises every validated transcript of a corpus language with
the configured tagger service and writes tagged_<lang>.jsonl.

The language is detected from the corpus directory when --lang is omitted.`,
	Args: cobra.ExactArgs(1),
	RunE: runTag,
}

var selectCmd = &cobra.Command{
	Use:   "select <tagged>",
	Short: "Select adjective-noun pairs",
	Long:  `Extracts every ADJ NOUN and NOUN ADJ sequence from tagged sentences and writes targets_<lang>.jsonl.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSelect,
}

var pformsCmd = &cobra.Command{
	Use:   "pforms <targets>",
	Short: "Add phonological forms from a lexicon",
	Long: `Looks up the phonological form of both words of every pair and writes
dataset_<lang>.jsonl. Pairs with a word missing from the lexicon are dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runPForms,
}

var codeCmd = &cobra.Command{
	Use:   "code <dataset>",
	Short: "Code pairs against phonological constraints",
	Long: `Codes every pair against the constraints of a constraint file and writes
output_<lang>.csv.

The constraint file holds one constraint per line: a regular expression and
a name separated by a tab. With --watch the dataset is recoded every time the
constraint file is saved, until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runCode,
}

func init() {
	runCmd.Flags().String("tagged", "", "resume from a tagged sentences artifact")
	runCmd.Flags().String("targets", "", "resume from a selected pairs artifact")
	runCmd.Flags().String("dataset", "", "resume from a dataset artifact")
	runCmd.Flags().String("lexicon", "", "pronunciation lexicon (CSV or TSV)")
	runCmd.Flags().String("constraints", "", "constraint file (TSV)")
	addRunFlags(runCmd)

	addRunFlags(tagCmd)
	addRunFlags(selectCmd)

	pformsCmd.Flags().String("lexicon", "", "pronunciation lexicon (CSV or TSV)")
	addRunFlags(pformsCmd)

	codeCmd.Flags().String("constraints", "", "constraint file (TSV)")
	codeCmd.Flags().BoolP("watch", "w", false, "recode when the constraint file changes")
	addRunFlags(codeCmd)

	rootCmd.AddCommand(runCmd, tagCmd, selectCmd, pformsCmd, codeCmd)
}

func runCascade(cmd *cobra.Command, args []string) error {
	if pipelineService == nil {
		return errors.New("pipeline service not configured")
	}

	cfg, err := runConfig(cmd)
	if err != nil {
		return err
	}

	req := driving.CascadeRequest{
		Tagged:  flagString(cmd, "tagged"),
		Targets: flagString(cmd, "targets"),
		Dataset: flagString(cmd, "dataset"),
	}
	if len(args) > 0 {
		req.CorpusDir = args[0]
	}

	results, err := pipelineService.Run(cmd.Context(), cfg, req)
	for i := range results {
		printStage(cmd, &results[i])
	}
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}
	return nil
}

func runTag(cmd *cobra.Command, args []string) error {
	return runStage(cmd, func(cfg domain.RunConfig) (*domain.StageResult, error) {
		return pipelineService.Tag(cmd.Context(), cfg, args[0])
	})
}

func runSelect(cmd *cobra.Command, args []string) error {
	return runStage(cmd, func(cfg domain.RunConfig) (*domain.StageResult, error) {
		return pipelineService.Select(cmd.Context(), cfg, args[0])
	})
}

func runPForms(cmd *cobra.Command, args []string) error {
	return runStage(cmd, func(cfg domain.RunConfig) (*domain.StageResult, error) {
		return pipelineService.Pronounce(cmd.Context(), cfg, args[0])
	})
}

func runCode(cmd *cobra.Command, args []string) error {
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}
	if !watch {
		return runStage(cmd, func(cfg domain.RunConfig) (*domain.StageResult, error) {
			return pipelineService.Code(cmd.Context(), cfg, args[0])
		})
	}

	if pipelineService == nil {
		return errors.New("pipeline service not configured")
	}
	cfg, err := runConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s, press Ctrl+C to stop.\n", cfg.ConstraintsPath)
	return pipelineService.WatchCode(ctx, cfg, args[0], func(r *domain.StageResult, err error) {
		if err != nil {
			cmd.PrintErrf("Coding failed: %v\n", err)
			return
		}
		printStage(cmd, r)
	})
}

// runStage runs a single pipeline stage and reports its result.
func runStage(cmd *cobra.Command, stage func(domain.RunConfig) (*domain.StageResult, error)) error {
	if pipelineService == nil {
		return errors.New("pipeline service not configured")
	}

	cfg, err := runConfig(cmd)
	if err != nil {
		return err
	}

	result, err := stage(cfg)
	if err != nil {
		return fmt.Errorf("%s failed: %w", cmd.Name(), err)
	}
	printStage(cmd, result)
	return nil
}
