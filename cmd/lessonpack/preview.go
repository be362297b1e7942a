package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hsmedia/lessonpack/internal/classify"
	"github.com/hsmedia/lessonpack/internal/plan"
)

// TaxonomyFlag limits the preview tag display to one checkbox taxonomy.
type TaxonomyFlag string

// Set implements pflag.Value.
func (f *TaxonomyFlag) Set(v string) error {
	if v == string(TaxonomyAll) {
		*f = TaxonomyAll
		return nil
	}
	for _, name := range classify.Names() {
		if v == name {
			*f = TaxonomyFlag(v)
			return nil
		}
	}
	return fmt.Errorf("invalid value %q, valid values are %q or one of: %s",
		v, TaxonomyAll, strings.Join(classify.Names(), ", "))
}

// String implements pflag.Value.
func (f *TaxonomyFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *TaxonomyFlag) Type() string {
	return "TaxonomyFlag"
}

var (
	_ pflag.Value = (*TaxonomyFlag)(nil)
)

const (
	TaxonomyAll TaxonomyFlag = "all"
)

func newPreviewCommand() *cobra.Command {
	var dayNum int
	taxonomyFlag := TaxonomyAll

	command := &cobra.Command{
		Use:   "preview <json|file>",
		Short: "Show derived overviews and resolved tag sets without writing files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			week, err := plan.Load(args[0])
			if err != nil {
				return fmt.Errorf("plan.Load() > %w", err)
			}
			if dayNum < 0 || dayNum > len(week.Days) {
				return fmt.Errorf("--day %d is out of range: the plan has %d day(s)", dayNum, len(week.Days))
			}

			displayPreview(cmd.OutOrStdout(), week, dayNum, taxonomyFlag, cfg.Course.Duration)
			return nil
		},
	}

	command.Flags().IntVar(&dayNum, "day", 0, "Preview a single day (1-based) instead of the whole week")
	command.Flags().Var(&taxonomyFlag, "taxonomy", "Limit the tag display to one taxonomy. Options: all, "+strings.Join(classify.Names(), ", "))

	return command
}

// displayPreview prints the classifier dry run: what each day's overview
// and checkbox tags will be once generated. A dayNum of zero shows every
// day, a taxonomyFlag of "all" every taxonomy.
func displayPreview(output io.Writer, week *plan.WeekPlan, dayNum int, taxonomyFlag TaxonomyFlag, defaultDuration string) {
	bold := color.New(color.Bold)

	header := fmt.Sprintf("Week %s", week.Week)
	if week.Unit != "" {
		header = fmt.Sprintf("%s: %s", header, week.Unit)
	}
	_, _ = bold.Fprintf(output, "=== %s ===\n", header)

	for i, day := range week.Days {
		if dayNum != 0 && dayNum != i+1 {
			continue
		}

		fmt.Fprintln(output)
		_, _ = bold.Fprintf(output, "Day %d • %s: %s\n", i+1, day.Label(i), day.Topic)
		fmt.Fprintf(output, "  Duration: %s minutes\n", day.DurationText(defaultDuration))

		overview := day.Overview
		label := "Overview"
		if overview == "" {
			overview = plan.DeriveOverview(day)
			label = "Overview (derived)"
		}
		fmt.Fprintf(output, "  %s: %s\n", label, overview)

		tags := classify.Resolve(day)
		for _, taxonomy := range classify.Names() {
			if taxonomyFlag != TaxonomyAll && taxonomy != string(taxonomyFlag) {
				continue
			}
			rendered := "(none)"
			if len(tags[taxonomy]) > 0 {
				rendered = strings.Join(tags[taxonomy], ", ")
			}
			if _, found := day.ExplicitTags(taxonomy); found {
				rendered += " (explicit)"
			}
			fmt.Fprintf(output, "  %s: %s\n", taxonomy, rendered)
		}
	}
}
