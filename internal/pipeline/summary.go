package pipeline

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/hsmedia/lessonpack/internal/plan"
)

// WriteSummary prints the run report of one generation pass: the week
// folder, the produced files per document kind, and any warnings. Single
// lessons report just the path of their one CTE plan.
func WriteSummary(output io.Writer, week *plan.WeekPlan, result *Result) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	if week.SingleLesson {
		path := result.Manifest.WeekDir
		if len(result.Manifest.CTEPlans) > 0 {
			path = filepath.Join(path, result.Manifest.CTEPlans[0])
		}
		_, _ = green.Fprintf(output, "SUCCESS: %s\n", path)
		writeWarnings(output, yellow, result.Warnings)
		return
	}

	_, _ = green.Fprintln(output, "SUCCESS: Weekly lesson plans generated")
	fmt.Fprintf(output, "Week Folder: %s\n", result.Manifest.WeekDir)
	fmt.Fprintf(output, "CTE Plans: %d\n", len(result.Manifest.CTEPlans))
	for _, name := range result.Manifest.CTEPlans {
		fmt.Fprintf(output, "  - %s\n", name)
	}
	if len(result.Manifest.PDFs) > 0 {
		fmt.Fprintf(output, "PDF Exports: %d\n", len(result.Manifest.PDFs))
		for _, name := range result.Manifest.PDFs {
			fmt.Fprintf(output, "  - %s\n", name)
		}
	}
	if result.Manifest.TeacherHandout != "" {
		fmt.Fprintf(output, "Teacher Handout: %s\n", result.Manifest.TeacherHandout)
	}
	for _, name := range result.Manifest.StudentHandouts {
		fmt.Fprintf(output, "Student Handout: %s\n", name)
	}
	if len(result.Manifest.Presentations) > 0 {
		fmt.Fprintf(output, "Daily Presentations: %d\n", len(result.Manifest.Presentations))
		for _, name := range result.Manifest.Presentations {
			fmt.Fprintf(output, "  - %s\n", name)
		}
	}
	if result.Manifest.BellRinger != "" {
		fmt.Fprintf(output, "Bell Ringer Slides: %s\n", result.Manifest.BellRinger)
	}
	if result.Manifest.MediaLog != "" {
		fmt.Fprintf(output, "Media Log: %s\n", result.Manifest.MediaLog)
	}
	writeWarnings(output, yellow, result.Warnings)
}

func writeWarnings(output io.Writer, yellow *color.Color, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	_, _ = yellow.Fprintf(output, "Warnings: %d\n", len(warnings))
	for _, warning := range warnings {
		fmt.Fprintf(output, "  - %s\n", warning)
	}
}
