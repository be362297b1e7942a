package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"

	"github.com/hsmedia/lessonpack/internal/document"
	"github.com/hsmedia/lessonpack/internal/history"
	"github.com/hsmedia/lessonpack/internal/media"
	mock_history "github.com/hsmedia/lessonpack/internal/mocks/history"
	mock_media "github.com/hsmedia/lessonpack/internal/mocks/media"
	"github.com/hsmedia/lessonpack/internal/plan"
	"github.com/hsmedia/lessonpack/internal/testutil"
)

var testCourse = document.Course{Title: "Media Foundations", Duration: "90"}

func TestGenerator_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	images := mock_media.NewMockImageFinder(ctrl)
	videos := mock_media.NewMockVideoFinder(ctrl)
	runs := mock_history.NewMockRunRepository(ctrl)

	// Each day requests an objectives, a focus and one content image.
	images.EXPECT().
		FindImage(gomock.Any(), gomock.Any()).
		Return(&media.Image{Query: "camera angles film", URL: "https://images.pexels.com/photos/1/a.jpg", Data: []byte("image-bytes")}, nil).
		Times(6)
	videos.EXPECT().
		FindVideo("Camera Angles").
		Return(&document.VideoRef{Title: "Camera Angles Explained", Channel: "StudioBinder", URL: "https://www.youtube.com/watch?v=abc123"})
	videos.EXPECT().
		FindVideo("Camera Shots").
		Return(&document.VideoRef{Title: "Shot Sizes Explained", URL: "https://www.youtube.com/watch?v=def456"})

	var recorded history.Run
	runs.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run history.Run) error {
			recorded = run
			return nil
		})

	tmpDir := t.TempDir()
	generator, err := NewGenerator(testCourse, "", tmpDir, media.NewResolver(images, videos), runs)
	require.NoError(t, err)

	result, err := generator.Generate(context.Background(), testutil.Week(), RunOptions{})
	require.NoError(t, err)

	weekDir := filepath.Join(tmpDir, "Week03")
	assert.Equal(t, weekDir, result.Manifest.WeekDir)
	assert.Equal(t, []string{"Day1_Camera_Angles_CTE.md", "Day2_Camera_Shots_CTE.md"}, result.Manifest.CTEPlans)
	assert.Equal(t, "Week3_Camera_Basics_TeacherHandout.md", result.Manifest.TeacherHandout)
	assert.Equal(t, []string{"Shot_List_StudentHandout.md"}, result.Manifest.StudentHandouts)
	assert.Equal(t, []string{"Day1_Camera_Angles_Presentation.md", "Day2_Camera_Shots_Presentation.md"}, result.Manifest.Presentations)
	assert.Equal(t, "Week3_BellRinger_Slides.md", result.Manifest.BellRinger)
	assert.Equal(t, "Week3_media_log.yaml", result.Manifest.MediaLog)
	assert.Equal(t, 8, result.MediaItems)
	assert.Empty(t, result.Warnings)

	for _, name := range result.Manifest.Files() {
		assert.FileExists(t, filepath.Join(weekDir, name))
	}
	assert.FileExists(t, filepath.Join(weekDir, "media", "day1_objectives.jpg"))
	assert.FileExists(t, filepath.Join(weekDir, "media", "day2_focus.jpg"))

	presentation, err := os.ReadFile(filepath.Join(weekDir, "Day1_Camera_Angles_Presentation.md"))
	require.NoError(t, err)
	assert.Contains(t, string(presentation), "# BELL RINGER")
	assert.Contains(t, string(presentation), "![camera angles film](media/day1_objectives.jpg)")
	assert.Contains(t, string(presentation), "[Camera Angles Explained (StudioBinder)](https://www.youtube.com/watch?v=abc123)")

	var log media.Log
	data, err := os.ReadFile(filepath.Join(weekDir, "Week3_media_log.yaml"))
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, &log))
	assert.Equal(t, "3", log.Week)
	assert.Equal(t, "Camera Basics", log.Unit)
	assert.Len(t, log.Entries, 8)

	assert.Equal(t, "3", recorded.Week)
	assert.Equal(t, "Camera Basics", recorded.Unit)
	assert.Equal(t, 8, recorded.Documents)
	assert.Equal(t, 8, recorded.MediaItems)
	assert.Equal(t, 0, recorded.Warnings)
	assert.Equal(t, weekDir, recorded.OutputDir)
	assert.Len(t, recorded.FileList(), 8)
}

func TestGenerator_Generate_skipPresentations(t *testing.T) {
	ctrl := gomock.NewController(t)
	images := mock_media.NewMockImageFinder(ctrl)
	videos := mock_media.NewMockVideoFinder(ctrl)

	tmpDir := t.TempDir()
	generator, err := NewGenerator(testCourse, "", tmpDir, media.NewResolver(images, videos), nil)
	require.NoError(t, err)

	result, err := generator.Generate(context.Background(), testutil.Week(), RunOptions{SkipPresentations: true})
	require.NoError(t, err)

	assert.Empty(t, result.Manifest.Presentations)
	assert.Empty(t, result.Manifest.BellRinger)
	assert.Empty(t, result.Manifest.MediaLog)
	assert.Equal(t, 0, result.MediaItems)

	weekDir := filepath.Join(tmpDir, "Week03")
	assert.FileExists(t, filepath.Join(weekDir, "Day1_Camera_Angles_CTE.md"))
	assert.FileExists(t, filepath.Join(weekDir, "Week3_Camera_Basics_TeacherHandout.md"))
	assert.NoFileExists(t, filepath.Join(weekDir, "Day1_Camera_Angles_Presentation.md"))
	assert.NoFileExists(t, filepath.Join(weekDir, "Week3_media_log.yaml"))
}

func TestGenerator_Generate_skipPresentationsFromInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	images := mock_media.NewMockImageFinder(ctrl)
	videos := mock_media.NewMockVideoFinder(ctrl)

	tmpDir := t.TempDir()
	generator, err := NewGenerator(testCourse, "", tmpDir, media.NewResolver(images, videos), nil)
	require.NoError(t, err)

	result, err := generator.Generate(context.Background(), testutil.Week(testutil.WithSkipPresentations()), RunOptions{})
	require.NoError(t, err)

	assert.Empty(t, result.Manifest.Presentations)
	assert.Empty(t, result.Manifest.BellRinger)
}

func TestGenerator_Generate_singleLesson(t *testing.T) {
	ctrl := gomock.NewController(t)
	runs := mock_history.NewMockRunRepository(ctrl)

	var recorded history.Run
	runs.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run history.Run) error {
			recorded = run
			return nil
		})

	week := &plan.WeekPlan{
		Week: "1",
		Days: []plan.DayPlan{{
			Topic:      "Rule of Thirds",
			Objectives: []string{"Apply the rule of thirds to a photo"},
			Schedule: []plan.Activity{
				{Time: "15 min", Name: "Grid Demo", Description: "Overlay grids on famous shots"},
			},
		}},
		Source:       "test fixture",
		SingleLesson: true,
	}

	tmpDir := t.TempDir()
	generator, err := NewGenerator(testCourse, "", tmpDir, media.NewResolver(nil, media.NewCurated()), runs)
	require.NoError(t, err)

	result, err := generator.Generate(context.Background(), week, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Day1_Rule_of_Thirds_CTE.md"}, result.Manifest.CTEPlans)
	assert.Empty(t, result.Manifest.TeacherHandout)
	assert.Empty(t, result.Manifest.Presentations)
	assert.FileExists(t, filepath.Join(tmpDir, "Week01", "Day1_Rule_of_Thirds_CTE.md"))
	assert.Equal(t, 1, recorded.Documents)
	assert.Equal(t, []string{"Day1_Rule_of_Thirds_CTE.md"}, recorded.FileList())
}

func TestGenerator_Generate_pdfExport(t *testing.T) {
	week := &plan.WeekPlan{
		Week: "1",
		Days: []plan.DayPlan{{
			Topic:      "Rule of Thirds",
			Objectives: []string{"Apply the rule of thirds to a photo"},
			Schedule: []plan.Activity{
				{Time: "15 min", Name: "Grid Demo", Description: "Overlay grids on famous shots"},
			},
		}},
		Source:       "test fixture",
		SingleLesson: true,
	}

	tmpDir := t.TempDir()
	generator, err := NewGenerator(testCourse, "", tmpDir, media.NewResolver(nil, media.NewCurated()), nil)
	require.NoError(t, err)

	result, err := generator.Generate(context.Background(), week, RunOptions{PDF: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"Day1_Rule_of_Thirds_CTE.pdf"}, result.Manifest.PDFs)
	assert.FileExists(t, filepath.Join(tmpDir, "Week01", "Day1_Rule_of_Thirds_CTE.pdf"))
}

func TestGenerator_Generate_invalidPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	images := mock_media.NewMockImageFinder(ctrl)
	videos := mock_media.NewMockVideoFinder(ctrl)

	tmpDir := t.TempDir()
	generator, err := NewGenerator(testCourse, "", tmpDir, media.NewResolver(images, videos), nil)
	require.NoError(t, err)

	result, err := generator.Generate(context.Background(), testutil.Week(testutil.WithDays()), RunOptions{})
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "invalid lesson plan")
	assert.Contains(t, err.Error(), "no lesson days found")
	assert.NoDirExists(t, filepath.Join(tmpDir, "Week03"))
}

func TestGenerator_Generate_mediaDegradation(t *testing.T) {
	ctrl := gomock.NewController(t)
	images := mock_media.NewMockImageFinder(ctrl)
	videos := mock_media.NewMockVideoFinder(ctrl)
	runs := mock_history.NewMockRunRepository(ctrl)

	images.EXPECT().FindImage(gomock.Any(), gomock.Any()).Return(nil, nil).Times(6)
	videos.EXPECT().FindVideo(gomock.Any()).Return(nil).Times(2)

	var recorded history.Run
	runs.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run history.Run) error {
			recorded = run
			return nil
		})

	tmpDir := t.TempDir()
	generator, err := NewGenerator(testCourse, "", tmpDir, media.NewResolver(images, videos), runs)
	require.NoError(t, err)

	result, err := generator.Generate(context.Background(), testutil.Week(), RunOptions{})
	require.NoError(t, err)

	weekDir := filepath.Join(tmpDir, "Week03")
	assert.Equal(t, 0, result.MediaItems)
	assert.Empty(t, result.Manifest.MediaLog)
	assert.NoFileExists(t, filepath.Join(weekDir, "Week3_media_log.yaml"))
	assert.Len(t, result.Warnings, 8)
	assert.Contains(t, result.Warnings[0], "using a generated placeholder")

	// Placeholders back every image slot, so the decks still render.
	assert.FileExists(t, filepath.Join(weekDir, "media", "day1_objectives.png"))
	assert.FileExists(t, filepath.Join(weekDir, "Day1_Camera_Angles_Presentation.md"))
	presentation, err := os.ReadFile(filepath.Join(weekDir, "Day1_Camera_Angles_Presentation.md"))
	require.NoError(t, err)
	assert.Contains(t, string(presentation), "media/day1_objectives.png")
	assert.Contains(t, string(presentation), "*Video placeholder: search YouTube for \"Camera Angles\".*")

	assert.Equal(t, 0, recorded.MediaItems)
	assert.Equal(t, 8, recorded.Warnings)
}

func TestGenerator_Generate_recordFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	images := mock_media.NewMockImageFinder(ctrl)
	videos := mock_media.NewMockVideoFinder(ctrl)
	runs := mock_history.NewMockRunRepository(ctrl)

	runs.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))

	tmpDir := t.TempDir()
	generator, err := NewGenerator(testCourse, "", tmpDir, media.NewResolver(images, videos), runs)
	require.NoError(t, err)

	result, err := generator.Generate(context.Background(), testutil.Week(), RunOptions{SkipPresentations: true})
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "could not record the run in the history database")
}

func TestGenerator_Generate_validationWarnings(t *testing.T) {
	tmpDir := t.TempDir()
	generator, err := NewGenerator(testCourse, "", tmpDir, media.NewResolver(nil, media.NewCurated()), nil)
	require.NoError(t, err)

	week := testutil.Week(testutil.WithoutSchedules(), testutil.WithSkipPresentations())
	result, err := generator.Generate(context.Background(), week, RunOptions{})
	require.NoError(t, err)

	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "has no schedule")
}
