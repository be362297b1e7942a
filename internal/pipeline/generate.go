// Package pipeline turns one parsed week plan into the full document
// package on disk.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hsmedia/lessonpack/internal/assets"
	"github.com/hsmedia/lessonpack/internal/classify"
	"github.com/hsmedia/lessonpack/internal/document"
	"github.com/hsmedia/lessonpack/internal/history"
	"github.com/hsmedia/lessonpack/internal/layout"
	"github.com/hsmedia/lessonpack/internal/media"
	"github.com/hsmedia/lessonpack/internal/plan"
	"github.com/hsmedia/lessonpack/internal/render"
)

// RunOptions are the per-run switches of a generation pass.
type RunOptions struct {
	PDF               bool
	SkipPresentations bool
}

// Result reports what one generation pass produced.
type Result struct {
	Manifest   layout.Manifest
	MediaItems int
	Warnings   []string
}

// Generator builds every document of a week plan into the output
// directory. A nil run repository disables history recording.
type Generator struct {
	course       document.Course
	templatePath string
	outputDir    string
	resolver     *media.Resolver
	runs         history.RunRepository
	validator    *plan.Validator
}

func NewGenerator(course document.Course, templatePath, outputDir string, resolver *media.Resolver, runs history.RunRepository) (*Generator, error) {
	validator, err := plan.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("plan.NewValidator() > %w", err)
	}
	return &Generator{
		course:       course,
		templatePath: templatePath,
		outputDir:    outputDir,
		resolver:     resolver,
		runs:         runs,
		validator:    validator,
	}, nil
}

// Generate validates week and writes its document package into the week
// folder. Presentation, PDF and media failures degrade to warnings on the
// result; CTE plan and handout failures abort the run.
func (generator *Generator) Generate(ctx context.Context, week *plan.WeekPlan, options RunOptions) (*Result, error) {
	validation := generator.validator.Validate(week)
	if validation.HasErrors() {
		return nil, fmt.Errorf("invalid lesson plan: %s", joinIssues(validation.Errors()))
	}

	result := &Result{}
	for _, warning := range validation.Warnings {
		result.Warnings = append(result.Warnings, warning.Error())
	}

	run := history.NewRun(string(week.Week), week.Unit)

	weekDir := filepath.Join(generator.outputDir, layout.WeekDir(string(week.Week)))
	if err := os.MkdirAll(weekDir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", weekDir, err)
	}
	result.Manifest.WeekDir = weekDir

	if err := generator.generateCTEPlans(week, weekDir, options, result); err != nil {
		return nil, err
	}

	// Legacy single-lesson documents produce the one CTE plan and nothing
	// else.
	if week.SingleLesson {
		generator.record(ctx, run, result)
		return result, nil
	}

	if err := generator.generateHandouts(week, weekDir, result); err != nil {
		return nil, err
	}

	if !options.SkipPresentations && !week.SkipPresentations {
		generator.generateDecks(ctx, week, weekDir, result)
	}

	generator.record(ctx, run, result)
	return result, nil
}

func (generator *Generator) generateCTEPlans(week *plan.WeekPlan, weekDir string, options RunOptions, result *Result) error {
	for i, day := range week.Days {
		dayNum := i + 1
		ctePlan := document.BuildCTE(week, day, classify.Resolve(day), generator.course)
		filename := layout.CTEPlanName(dayNum, day.Topic)
		path := filepath.Join(weekDir, filename)
		err := writeFile(path, func(output io.Writer) error {
			return assets.WriteCTEPlan(output, generator.templatePath, ctePlan)
		})
		if err != nil {
			return fmt.Errorf("assets.WriteCTEPlan(%s) > %w", filename, err)
		}
		result.Manifest.CTEPlans = append(result.Manifest.CTEPlans, filename)

		if !options.PDF {
			continue
		}
		pdfPath, err := render.ConvertMarkdownToPDF(path)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("could not convert %s to PDF: %v", filename, err))
			continue
		}
		result.Manifest.PDFs = append(result.Manifest.PDFs, filepath.Base(pdfPath))
	}
	return nil
}

func (generator *Generator) generateHandouts(week *plan.WeekPlan, weekDir string, result *Result) error {
	teacher := document.BuildTeacherHandout(week, generator.course)
	filename := layout.TeacherHandoutName(string(week.Week), week.Unit)
	err := writeFile(filepath.Join(weekDir, filename), func(output io.Writer) error {
		return render.WriteHandout(output, teacher)
	})
	if err != nil {
		return fmt.Errorf("render.WriteHandout(%s) > %w", filename, err)
	}
	result.Manifest.TeacherHandout = filename

	for _, spec := range week.StudentHandouts {
		handout := document.BuildStudentHandout(spec)
		name := spec.Name
		if name == "" {
			name = "Handout"
		}
		filename := layout.StudentHandoutName(name)
		err := writeFile(filepath.Join(weekDir, filename), func(output io.Writer) error {
			return render.WriteHandout(output, handout)
		})
		if err != nil {
			return fmt.Errorf("render.WriteHandout(%s) > %w", filename, err)
		}
		result.Manifest.StudentHandouts = append(result.Manifest.StudentHandouts, filename)
	}
	return nil
}

// generateDecks never aborts the run: a failed deck leaves a warning and
// the remaining days keep generating.
func (generator *Generator) generateDecks(ctx context.Context, week *plan.WeekPlan, weekDir string, result *Result) {
	var entries []media.Entry
	for i, day := range week.Days {
		dayNum := i + 1
		deck := document.BuildPresentation(week, day, dayNum)
		deckEntries, warnings := generator.resolver.ResolveDeck(ctx, &deck, weekDir)
		entries = append(entries, deckEntries...)
		result.Warnings = append(result.Warnings, warnings...)

		filename := layout.PresentationName(dayNum, day.Topic)
		err := writeFile(filepath.Join(weekDir, filename), func(output io.Writer) error {
			return render.WriteDeck(output, deck)
		})
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("could not generate the day %d presentation: %v", dayNum, err))
			continue
		}
		result.Manifest.Presentations = append(result.Manifest.Presentations, filename)
	}

	bellRinger := document.BuildBellRinger(week)
	filename := layout.BellRingerName(string(week.Week))
	err := writeFile(filepath.Join(weekDir, filename), func(output io.Writer) error {
		return render.WriteDeck(output, bellRinger)
	})
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not generate the bell ringer deck: %v", err))
	} else {
		result.Manifest.BellRinger = filename
	}

	result.MediaItems = len(entries)
	if len(entries) == 0 {
		return
	}
	logName := layout.MediaLogName(string(week.Week))
	log := media.Log{Week: string(week.Week), Unit: week.Unit, Entries: entries}
	if err := media.WriteLog(filepath.Join(weekDir, logName), log); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not write the media log: %v", err))
		return
	}
	result.Manifest.MediaLog = logName
}

// record persists the run manifest. Recording never fails a run that
// already produced its documents.
func (generator *Generator) record(ctx context.Context, run history.Run, result *Result) {
	if generator.runs == nil {
		return
	}
	files := result.Manifest.Files()
	run.Documents = len(files)
	run.MediaItems = result.MediaItems
	run.Warnings = len(result.Warnings)
	run.OutputDir = result.Manifest.WeekDir
	run.SetFiles(files)
	if err := generator.runs.Record(ctx, run); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not record the run in the history database: %v", err))
	}
}

func writeFile(path string, write func(output io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close() > %w", err)
	}
	return nil
}

func joinIssues(issues []plan.ValidationError) string {
	messages := make([]string, 0, len(issues))
	for _, issue := range issues {
		messages = append(messages, issue.Error())
	}
	return strings.Join(messages, "; ")
}
