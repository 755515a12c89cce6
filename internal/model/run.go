package model

import "time"

// RunStatus represents the current state of an analysis run.
type RunStatus string

const (
	RunStatusQueued   RunStatus = "queued"
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run represents a single pipeline invocation for a startup, as persisted by
// the store. The core pipeline itself has no persistence obligation; runs
// exist so the serve and batch commands can cache and list results.
type Run struct {
	ID        string    `json:"id"`
	NameKey   string    `json:"name_key"`
	Startup   Startup   `json:"startup"`
	Status    RunStatus `json:"status"`
	Result    *Document `json:"result,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
