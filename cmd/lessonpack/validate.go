package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hsmedia/lessonpack/internal/classify"
	"github.com/hsmedia/lessonpack/internal/plan"
)

func newValidateCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "validate <json|file>",
		Short: "Validate a lesson plan document without generating anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := plan.Load(args[0])
			if err != nil {
				return fmt.Errorf("plan.Load() > %w", err)
			}

			validator, err := plan.NewValidator()
			if err != nil {
				return fmt.Errorf("plan.NewValidator() > %w", err)
			}
			result := validator.Validate(week)
			addTagWarnings(week, result)

			displayValidationResults(cmd.OutOrStdout(), result)

			if result.HasErrors() {
				return fmt.Errorf("validation failed with %d error(s)",
					len(result.StructureErrors)+len(result.ContentErrors))
			}
			return nil
		},
	}

	return command
}

// addTagWarnings flags explicit tag keys that name no taxonomy category.
// An unknown key is not an error: the box it would check simply does not
// exist on the form.
func addTagWarnings(week *plan.WeekPlan, result *plan.ValidationResult) {
	for i, day := range week.Days {
		for _, taxonomy := range classify.Names() {
			explicit, found := day.ExplicitTags(taxonomy)
			if !found {
				continue
			}
			for _, key := range classify.UnknownKeys(taxonomy, explicit) {
				location := fmt.Sprintf("days[%d].%s", i, taxonomy)
				if week.SingleLesson {
					location = taxonomy
				}
				result.AddWarning(plan.ValidationError{
					Source:   week.Source,
					Location: location,
					Message:  fmt.Sprintf("unknown %s tag %q; it will not check any box on the CTE form", taxonomy, key),
				})
			}
		}
	}
}

func displayValidationResults(output io.Writer, result *plan.ValidationResult) {
	totalErrors := len(result.StructureErrors) + len(result.ContentErrors)
	totalWarnings := len(result.Warnings)

	fmt.Fprintln(output, "\n=== Validation Results ===")

	if len(result.StructureErrors) > 0 {
		fmt.Fprintf(output, "✗ Structure Errors (%d):\n", len(result.StructureErrors))
		for _, err := range result.StructureErrors {
			fmt.Fprintf(output, "  - %s\n", err.Error())
		}
		fmt.Fprintln(output)
	}

	if len(result.ContentErrors) > 0 {
		fmt.Fprintf(output, "✗ Content Errors (%d):\n", len(result.ContentErrors))
		for _, err := range result.ContentErrors {
			fmt.Fprintf(output, "  - %s\n", err.Error())
		}
		fmt.Fprintln(output)
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(output, "⚠ Warnings (%d):\n", len(result.Warnings))
		for _, warn := range result.Warnings {
			fmt.Fprintf(output, "  - %s\n", warn.Error())
		}
		fmt.Fprintln(output)
	}

	fmt.Fprintln(output, "=== Summary ===")
	if totalErrors == 0 && totalWarnings == 0 {
		fmt.Fprintln(output, "✓ All validations passed!")
	} else {
		if totalErrors > 0 {
			fmt.Fprintf(output, "✗ Total errors: %d\n", totalErrors)
		}
		if totalWarnings > 0 {
			fmt.Fprintf(output, "⚠ Total warnings: %d\n", totalWarnings)
		}
	}
	fmt.Fprintln(output)
}
