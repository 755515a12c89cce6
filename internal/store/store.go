// Package store persists analysis runs so the serve and batch commands can
// cache and list results. The pipeline itself never touches the store.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

// ErrNotFound is returned when a lookup matches no run.
var ErrNotFound = eris.New("store: run not found")

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status  model.RunStatus `json:"status,omitempty"`
	NameKey string          `json:"name_key,omitempty"`
	Limit   int             `json:"limit,omitempty"`
	Offset  int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for analysis runs. Runs are keyed
// by the startup's name key (lowercased, trimmed name); GetLatestByName
// returns the most recent run for a key, which is how the serve surface
// implements its last-writer-wins cache.
type Store interface {
	CreateRun(ctx context.Context, startup model.Startup) (*model.Run, error)
	UpdateRunStatus(ctx context.Context, runID string, status model.RunStatus) error
	CompleteRun(ctx context.Context, runID string, result *model.Document) error
	GetLatestByName(ctx context.Context, nameKey string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	Migrate(ctx context.Context) error
	Close() error
}

// Open constructs a Store for the configured driver. An empty driver selects
// the in-memory store.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case "", "memory":
		return NewMemory(), nil
	case "sqlite":
		return NewSQLite(dsn)
	case "postgres":
		return NewPostgres(ctx, dsn, nil)
	default:
		return nil, eris.Errorf("store: unknown driver %q", driver)
	}
}
