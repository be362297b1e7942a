// Package history records completed generator runs in a local database.
package history

//go:generate mockgen -source=history.go -destination=../mocks/history/mock_history.go -package=mock_history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Run is one recorded generator run.
type Run struct {
	ID         string `db:"id"`
	Week       string `db:"week"`
	Unit       string `db:"unit"`
	StartedAt  string `db:"started_at"`
	Documents  int    `db:"documents"`
	MediaItems int    `db:"media_items"`
	Warnings   int    `db:"warnings"`
	OutputDir  string `db:"output_dir"`
	Files      string `db:"files"`
}

// NewRun stamps a run record with a fresh id and start time. Counts and
// the file list are filled in by the caller once generation finishes.
func NewRun(week, unit string) Run {
	return Run{
		ID:        uuid.New().String(),
		Week:      week,
		Unit:      unit,
		StartedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// SetFiles stores the produced file list, one path per line.
func (run *Run) SetFiles(files []string) {
	run.Files = strings.Join(files, "\n")
}

// FileList returns the produced file paths.
func (run Run) FileList() []string {
	if run.Files == "" {
		return nil
	}
	return strings.Split(run.Files, "\n")
}

// RunRepository defines operations for recording and listing runs.
type RunRepository interface {
	Record(ctx context.Context, run Run) error
	ListRecent(ctx context.Context, limit int) ([]Run, error)
}

// DBRunRepository implements RunRepository using SQLite.
type DBRunRepository struct {
	db *sqlx.DB
}

// NewDBRunRepository creates a new DBRunRepository.
func NewDBRunRepository(db *sqlx.DB) *DBRunRepository {
	return &DBRunRepository{db: db}
}

// Record inserts one completed run.
func (r *DBRunRepository) Record(ctx context.Context, run Run) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO runs (id, week, unit, started_at, documents, media_items, warnings, output_dir, files)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Week, run.Unit, run.StartedAt, run.Documents, run.MediaItems, run.Warnings, run.OutputDir, run.Files)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert run) > %w", err)
	}
	return nil
}

// ListRecent returns the most recent runs, newest first.
func (r *DBRunRepository) ListRecent(ctx context.Context, limit int) ([]Run, error) {
	var runs []Run
	if err := r.db.SelectContext(ctx, &runs, "SELECT * FROM runs ORDER BY started_at DESC, id LIMIT ?", limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(runs) > %w", err)
	}
	return runs, nil
}
