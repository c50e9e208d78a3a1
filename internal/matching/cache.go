package matching

import (
	"context"
	"sync"

	"qtrack/internal/domain"
	"qtrack/internal/port"
)

// ProjectCache is a read-through snapshot cache over the project
// repository. Writers to the project store must call Invalidate after
// every mutation; the next Snapshot reloads.
type ProjectCache struct {
	repo port.ProjectRepository

	mu       sync.RWMutex
	projects []domain.Project
	valid    bool
}

// NewProjectCache creates a ProjectCache backed by the given repository.
func NewProjectCache(repo port.ProjectRepository) *ProjectCache {
	return &ProjectCache{repo: repo}
}

// Snapshot returns the cached project list, loading it when stale. The
// returned slice is a copy; callers may not observe later invalidations.
func (c *ProjectCache) Snapshot(ctx context.Context) ([]domain.Project, error) {
	c.mu.RLock()
	if c.valid {
		out := make([]domain.Project, len(c.projects))
		copy(out, c.projects)
		c.mu.RUnlock()
		return out, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		projects, err := c.repo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		c.projects = projects
		c.valid = true
	}
	out := make([]domain.Project, len(c.projects))
	copy(out, c.projects)
	return out, nil
}

// Invalidate marks the cache stale.
func (c *ProjectCache) Invalidate() {
	c.mu.Lock()
	c.projects = nil
	c.valid = false
	c.mu.Unlock()
}
