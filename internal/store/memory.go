package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

// MemoryStore keeps runs in process memory. It is the default driver for the
// serve command, where the cache contract is last-writer-wins per name key.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]*model.Run // by run ID
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{runs: make(map[string]*model.Run)}
}

func (s *MemoryStore) CreateRun(ctx context.Context, startup model.Startup) (*model.Run, error) {
	now := time.Now().UTC()
	r := &model.Run{
		ID:        uuid.New().String(),
		NameKey:   startup.NameKey(),
		Startup:   startup,
		Status:    model.RunStatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.runs[r.ID] = r
	s.mu.Unlock()

	out := *r
	return &out, nil
}

func (s *MemoryStore) UpdateRunStatus(ctx context.Context, runID string, status model.RunStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[runID]
	if !ok {
		return ErrNotFound
	}
	r.Status = status
	r.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *MemoryStore) CompleteRun(ctx context.Context, runID string, result *model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[runID]
	if !ok {
		return ErrNotFound
	}
	r.Result = result.Clone()
	r.Status = model.RunStatusComplete
	r.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *MemoryStore) GetLatestByName(ctx context.Context, nameKey string) (*model.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *model.Run
	for _, r := range s.runs {
		if r.NameKey != nameKey {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) {
			latest = r
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return cloneRun(latest), nil
}

func (s *MemoryStore) ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error) {
	s.mu.RLock()
	matched := make([]*model.Run, 0, len(s.runs))
	for _, r := range s.runs {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.NameKey != "" && r.NameKey != filter.NameKey {
			continue
		}
		matched = append(matched, r)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[filter.Offset:]
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}

	runs := make([]model.Run, 0, len(matched))
	for _, r := range matched {
		runs = append(runs, *cloneRun(r))
	}
	return runs, nil
}

func (s *MemoryStore) Migrate(ctx context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

func cloneRun(r *model.Run) *model.Run {
	out := *r
	if r.Result != nil {
		out.Result = r.Result.Clone()
	}
	return &out
}
