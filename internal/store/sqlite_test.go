package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestSQLite_CreateAndGetLatest(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testStartup("Vela"))
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "vela", run.NameKey)

	got, err := st.GetLatestByName(ctx, "vela")
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "Vela", got.Startup.Name)
	assert.Equal(t, model.RunStatusQueued, got.Status)
	assert.Nil(t, got.Result)
}

func TestSQLite_GetLatestByName_NotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetLatestByName(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_CompleteRun_RoundTrip(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testStartup("Vela"))
	require.NoError(t, err)

	require.NoError(t, st.CompleteRun(ctx, run.ID, testDocument("Vela")))

	got, err := st.GetLatestByName(ctx, "vela")
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, got.Status)
	require.NotNil(t, got.Result)
	assert.Equal(t, "Vela", got.Result.Research.Name)
	assert.Equal(t, []string{"done"}, got.Result.Progress)
}

func TestSQLite_CompleteRun_NotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	err := st.CompleteRun(context.Background(), "no-such-id", testDocument("Vela"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_UpdateRunStatus(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testStartup("Vela"))
	require.NoError(t, err)

	require.NoError(t, st.UpdateRunStatus(ctx, run.ID, model.RunStatusFailed))

	got, err := st.GetLatestByName(ctx, "vela")
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusFailed, got.Status)
}

func TestSQLite_ListRuns_Filters(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	vela, err := st.CreateRun(ctx, testStartup("Vela"))
	require.NoError(t, err)
	_, err = st.CreateRun(ctx, testStartup("Quill"))
	require.NoError(t, err)
	require.NoError(t, st.CompleteRun(ctx, vela.ID, testDocument("Vela")))

	all, err := st.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	complete, err := st.ListRuns(ctx, RunFilter{Status: model.RunStatusComplete})
	require.NoError(t, err)
	require.Len(t, complete, 1)
	assert.Equal(t, vela.ID, complete[0].ID)

	byName, err := st.ListRuns(ctx, RunFilter{NameKey: "quill"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Quill", byName[0].Startup.Name)

	limited, err := st.ListRuns(ctx, RunFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLite_LatestWinsForRepeatedName(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := st.CreateRun(ctx, testStartup("Vela"))
	require.NoError(t, err)
	second, err := st.CreateRun(ctx, testStartup("  VELA"))
	require.NoError(t, err)
	require.NoError(t, st.CompleteRun(ctx, second.ID, testDocument("Vela")))

	runs, err := st.ListRuns(ctx, RunFilter{NameKey: "vela"})
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	got, err := st.GetLatestByName(ctx, "vela")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}
