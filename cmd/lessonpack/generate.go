package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hsmedia/lessonpack/internal/document"
	"github.com/hsmedia/lessonpack/internal/pipeline"
	"github.com/hsmedia/lessonpack/internal/plan"
)

func newGenerateCommand() *cobra.Command {
	var (
		pdf               bool
		skipPresentations bool
		outputDir         string
	)

	command := &cobra.Command{
		Use:   "generate <json|file>",
		Short: "Generate the full document package for a week of lessons",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.Output.Directory = outputDir
			}

			week, err := plan.Load(args[0])
			if err != nil {
				return fmt.Errorf("plan.Load() > %w", err)
			}

			// A broken history database must not block generation.
			runs, closeDB, err := newRunRepository(cfg)
			if err != nil {
				slog.Warn("run history disabled", "error", err)
			} else {
				defer closeDB()
			}

			course := document.Course{Title: cfg.Course.Title, Duration: cfg.Course.Duration}
			generator, err := pipeline.NewGenerator(course, cfg.Templates.CTE, cfg.Output.Directory, newMediaResolver(cfg), runs)
			if err != nil {
				return fmt.Errorf("pipeline.NewGenerator() > %w", err)
			}

			result, err := generator.Generate(cmd.Context(), week, pipeline.RunOptions{
				PDF:               pdf,
				SkipPresentations: skipPresentations,
			})
			if err != nil {
				return err
			}

			pipeline.WriteSummary(cmd.OutOrStdout(), week, result)
			return nil
		},
	}

	command.Flags().BoolVar(&pdf, "pdf", false, "Also convert each CTE plan to PDF")
	command.Flags().BoolVar(&skipPresentations, "skip-presentations", false, "Skip presentation decks and the media log")
	command.Flags().StringVar(&outputDir, "output", "", "Override the configured output directory")

	return command
}
