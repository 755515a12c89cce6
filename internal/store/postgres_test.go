package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	return NewPostgresWithPool(mock, nil), mock
}

func runColumns() []string {
	return []string{"id", "name_key", "startup", "status", "result", "created_at", "updated_at"}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestPostgres_CreateRun(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO runs`).
		WithArgs(pgxmock.AnyArg(), "vela", pgxmock.AnyArg(), "queued", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	run, err := s.CreateRun(context.Background(), testStartup("Vela"))
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "vela", run.NameKey)
	assert.Equal(t, model.RunStatusQueued, run.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CompleteRun(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`UPDATE runs SET result`).
		WithArgs(pgxmock.AnyArg(), "complete", pgxmock.AnyArg(), "run-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := s.CompleteRun(context.Background(), "run-1", testDocument("Vela"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CompleteRun_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`UPDATE runs SET result`).
		WithArgs(pgxmock.AnyArg(), "complete", pgxmock.AnyArg(), "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := s.CompleteRun(context.Background(), "missing", testDocument("Vela"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateRunStatus_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`UPDATE runs SET status`).
		WithArgs("failed", pgxmock.AnyArg(), "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := s.UpdateRunStatus(context.Background(), "missing", model.RunStatusFailed)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetLatestByName(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	now := time.Now().UTC()

	rows := pgxmock.NewRows(runColumns()).AddRow(
		"run-1", "vela", mustJSON(t, testStartup("Vela")), model.RunStatusComplete,
		mustJSON(t, testDocument("Vela")), now, now,
	)
	mock.ExpectQuery(`SELECT .+ FROM runs WHERE name_key = \$1 ORDER BY created_at DESC LIMIT 1`).
		WithArgs("vela").
		WillReturnRows(rows)

	run, err := s.GetLatestByName(context.Background(), "vela")
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, "Vela", run.Startup.Name)
	require.NotNil(t, run.Result)
	assert.Equal(t, "Vela", run.Result.Research.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetLatestByName_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT .+ FROM runs WHERE name_key = \$1`).
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetLatestByName(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListRuns(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	now := time.Now().UTC()

	rows := pgxmock.NewRows(runColumns()).
		AddRow("run-2", "quill", mustJSON(t, testStartup("Quill")), model.RunStatusQueued, []byte(nil), now, now).
		AddRow("run-1", "vela", mustJSON(t, testStartup("Vela")), model.RunStatusComplete, mustJSON(t, testDocument("Vela")), now.Add(-time.Minute), now)
	mock.ExpectQuery(`SELECT .+ FROM runs WHERE true ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(100).
		WillReturnRows(rows)

	runs, err := s.ListRuns(context.Background(), RunFilter{})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-2", runs[0].ID)
	assert.Nil(t, runs[0].Result)
	assert.NotNil(t, runs[1].Result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListRuns_StatusFilter(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	rows := pgxmock.NewRows(runColumns())
	mock.ExpectQuery(`SELECT .+ FROM runs WHERE true AND status = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("failed", 10).
		WillReturnRows(rows)

	runs, err := s.ListRuns(context.Background(), RunFilter{Status: model.RunStatusFailed, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, runs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS runs`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
