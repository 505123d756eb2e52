// Package commitdata resolves, for one commit-graph node, its changed
// files, textual diff, and agent-trace ranges.
//
// The accessor is a stateless projection over the externally supplied mode
// and repository state, except for the diff cache. The cache belongs to one
// accessor instance and one repository session: a repository switch must
// construct a new Accessor, never clear this one in place, so in-flight
// reads against the old repository keep seeing the old cache.
package commitdata

import (
	"context"
	"sync"
)

type diffKey struct {
	nodeID   string
	filePath string
}

type inflightDiff struct {
	done chan struct{}
	text string
	err  error
}

// Accessor serves per-node file, diff, and trace lookups.
type Accessor struct {
	mode Mode
	repo Repository
	deps Deps

	mu       sync.Mutex
	cache    map[diffKey]string
	inflight map[diffKey]*inflightDiff
}

// NewAccessor creates an accessor for one repository session. The diff
// cache starts empty and lives exactly as long as the accessor.
func NewAccessor(mode Mode, repo Repository, deps Deps) *Accessor {
	return &Accessor{
		mode:     mode,
		repo:     repo,
		deps:     deps,
		cache:    make(map[diffKey]string),
		inflight: make(map[diffKey]*inflightDiff),
	}
}

// FilesForNode returns the changed files of a node. Demo mode serves the
// fixture list; repo mode delegates to the indexer. Any other state,
// including a repository mid-transition between load states, yields an
// empty sequence rather than an error.
func (a *Accessor) FilesForNode(ctx context.Context, nodeID string) ([]FileChange, error) {
	switch {
	case a.mode == ModeDemo:
		return demoFilesForNode(), nil
	case a.mode == ModeRepo && a.repo.Ready:
		return a.deps.Index.Files(ctx, a.repo.Root, nodeID)
	default:
		return nil, nil
	}
}

// DiffForFile returns the diff text for one file at one node.
//
// Repo-mode results are memoized per (nodeID, filePath) key: a cache hit
// never invokes the diff provider again, and concurrent requests for the
// same key are de-duplicated to at most one in-flight computation. The
// cache is never invalidated; commit content is immutable once committed.
func (a *Accessor) DiffForFile(ctx context.Context, nodeID, filePath string) (string, error) {
	switch {
	case a.mode == ModeDemo:
		if diff, ok := demoDiffs[filePath]; ok {
			return diff, nil
		}
		return DemoDiffPlaceholder, nil
	case a.mode == ModeRepo && a.repo.Ready:
		return a.repoDiff(ctx, nodeID, filePath)
	default:
		return "", nil
	}
}

func (a *Accessor) repoDiff(ctx context.Context, nodeID, filePath string) (string, error) {
	key := diffKey{nodeID: nodeID, filePath: filePath}

	a.mu.Lock()
	if text, ok := a.cache[key]; ok {
		a.mu.Unlock()
		return text, nil
	}
	if pending, ok := a.inflight[key]; ok {
		a.mu.Unlock()
		select {
		case <-pending.done:
			return pending.text, pending.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	pending := &inflightDiff{done: make(chan struct{})}
	a.inflight[key] = pending
	a.mu.Unlock()

	text, err := a.deps.Diffs.Diff(ctx, a.repo.Root, nodeID, filePath)

	a.mu.Lock()
	if err == nil {
		a.cache[key] = text
	}
	delete(a.inflight, key)
	pending.text, pending.err = text, err
	close(pending.done)
	a.mu.Unlock()

	return text, err
}

// TraceRangesForFile returns the agent-trace ranges for one file at one
// node. Traces are not modeled for fixture data, so demo mode yields an
// empty sequence.
func (a *Accessor) TraceRangesForFile(ctx context.Context, nodeID, filePath string) ([]TraceRange, error) {
	if a.mode != ModeRepo || !a.repo.Ready {
		return nil, nil
	}
	return a.deps.Traces.Traces(ctx, a.repo.ID, nodeID, filePath)
}
