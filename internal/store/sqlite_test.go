package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/transition-cli/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_RunLifecycle(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "acq.csv", "profiles.csv")
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunStatusRunning, run.Status)

	summary := model.RunSummary{Events: 10, Matched: 7, Unmatched: 2, Faulty: 1}
	require.NoError(t, s.CompleteRun(ctx, run.ID, summary))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusCompleted, got.Status)
	assert.Equal(t, summary, got.Summary)
	assert.Equal(t, "acq.csv", got.AcquisitionsFile)
}

func TestSQLiteStore_FailRun(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "acq.csv", "profiles.csv")
	require.NoError(t, err)
	require.NoError(t, s.FailRun(ctx, run.ID))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusFailed, got.Status)
}

func TestSQLiteStore_UpdateMissingRun(t *testing.T) {
	s := newTestSQLite(t)

	err := s.CompleteRun(context.Background(), "nonexistent", model.RunSummary{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteStore_ListRunsFilter(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	r1, err := s.CreateRun(ctx, "a.csv", "p.csv")
	require.NoError(t, err)
	_, err = s.CreateRun(ctx, "b.csv", "p.csv")
	require.NoError(t, err)
	require.NoError(t, s.CompleteRun(ctx, r1.ID, model.RunSummary{Events: 1}))

	completed, err := s.ListRuns(ctx, RunFilter{Status: model.RunStatusCompleted})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, r1.ID, completed[0].ID)

	all, err := s.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLiteStore_SaveAndListResults(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "acq.csv", "profiles.csv")
	require.NoError(t, err)

	rows := []model.ResultRow{
		{SubjectID: 7, ProfileRef: "jane-doe", Acquiree: "Acme Corporation", Acquirer: "Initech"},
		{SubjectID: 9, ProfileRef: "john-roe", Acquiree: "Globex Corporation", Acquirer: "MegaCorp"},
	}
	require.NoError(t, s.SaveResults(ctx, run.ID, rows))

	got, err := s.ListResults(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(7), got[0].SubjectID)
	assert.Equal(t, "Acme Corporation", got[0].Acquiree)

	none, err := s.ListResults(ctx, "other-run")
	require.NoError(t, err)
	assert.Empty(t, none)
}
