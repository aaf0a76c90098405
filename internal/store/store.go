// Package store persists inspection runs and their result rows behind a
// driver-agnostic interface, with SQLite and Postgres implementations.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/transition-cli/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// Store defines run persistence for the transition inspector.
type Store interface {
	// Runs
	CreateRun(ctx context.Context, acquisitionsFile, profilesFile string) (*model.InspectionRun, error)
	CompleteRun(ctx context.Context, runID string, summary model.RunSummary) error
	FailRun(ctx context.Context, runID string) error
	GetRun(ctx context.Context, runID string) (*model.InspectionRun, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.InspectionRun, error)

	// Result rows
	SaveResults(ctx context.Context, runID string, rows []model.ResultRow) error
	ListResults(ctx context.Context, runID string) ([]model.ResultRow, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Open constructs a Store for the configured driver ("sqlite" or
// "postgres") and runs migrations.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	var (
		s   Store
		err error
	)
	switch driver {
	case "sqlite", "":
		s, err = NewSQLite(dsn)
	case "postgres":
		s, err = NewPostgres(ctx, dsn, nil)
	default:
		return nil, eris.Errorf("store: unknown driver %q", driver)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}
