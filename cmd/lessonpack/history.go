package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hsmedia/lessonpack/internal/history"
)

func newHistoryCommand() *cobra.Command {
	var limit int

	command := &cobra.Command{
		Use:   "history",
		Short: "List recent generation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			runs, closeDB, err := newRunRepository(cfg)
			if err != nil {
				return err
			}
			defer closeDB()

			recent, err := runs.ListRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("runs.ListRecent() > %w", err)
			}

			displayRuns(cmd.OutOrStdout(), recent)
			return nil
		},
	}

	command.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to list")

	return command
}

func displayRuns(output io.Writer, runs []history.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(output, "No runs recorded yet.")
		return
	}

	bold := color.New(color.Bold)
	for _, run := range runs {
		_, _ = bold.Fprintf(output, "%s  Week %s", run.StartedAt, run.Week)
		if run.Unit != "" {
			_, _ = bold.Fprintf(output, ": %s", run.Unit)
		}
		fmt.Fprintln(output)
		fmt.Fprintf(output, "  %d document(s), %d media item(s), %d warning(s)\n", run.Documents, run.MediaItems, run.Warnings)
		fmt.Fprintf(output, "  %s\n", run.OutputDir)
	}
}
