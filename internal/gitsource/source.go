// Package gitsource implements the commit-data collaborator interfaces on
// top of a local git repository using go-git.
//
// It is deliberately kept out of the ingestion core: the core consumes
// these collaborators only through the interfaces in internal/commitdata.
package gitsource

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"

	"github.com/haldun-rowe/gitstory/internal/commitdata"
)

// Source wraps one opened repository. It implements both
// commitdata.FileIndexer and commitdata.DiffProvider, caching file listings
// by node (commit content is immutable, so entries never go stale).
type Source struct {
	repo *git.Repository
	root string
	id   string

	mu    sync.RWMutex
	files map[string][]commitdata.FileChange
}

// Open opens the repository rooted at root.
func Open(root string) (*Source, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", root, err)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	sum := sha256.Sum256([]byte(abs))

	return &Source{
		repo:  repo,
		root:  root,
		id:    hex.EncodeToString(sum[:8]),
		files: make(map[string][]commitdata.FileChange),
	}, nil
}

// RepoID returns a stable identifier for this repository, used to key
// trace lookups. It is derived from the absolute repository path so it
// survives across processes.
func (s *Source) RepoID() string {
	return s.id
}

// Files resolves the changed files of nodeID against its first parent.
func (s *Source) Files(ctx context.Context, repoRoot, nodeID string) ([]commitdata.FileChange, error) {
	s.mu.RLock()
	cached, ok := s.files[nodeID]
	s.mu.RUnlock()
	if ok {
		out := make([]commitdata.FileChange, len(cached))
		copy(out, cached)
		return out, nil
	}

	changes, err := s.changes(ctx, nodeID)
	if err != nil {
		return nil, err
	}

	resolved := make([]commitdata.FileChange, 0, len(changes))
	for _, change := range changes {
		action, err := change.Action()
		if err != nil {
			return nil, fmt.Errorf("resolving change action at %s: %w", nodeID, err)
		}
		fc := commitdata.FileChange{Path: change.To.Name}
		switch action {
		case merkletrie.Insert:
			fc.Status = commitdata.StatusAdded
		case merkletrie.Delete:
			fc.Status = commitdata.StatusDeleted
			fc.Path = change.From.Name
		default:
			fc.Status = commitdata.StatusModified
		}
		resolved = append(resolved, fc)
	}

	s.mu.Lock()
	s.files[nodeID] = resolved
	s.mu.Unlock()

	out := make([]commitdata.FileChange, len(resolved))
	copy(out, resolved)
	return out, nil
}

// Diff returns the unified patch text of one file at nodeID.
func (s *Source) Diff(ctx context.Context, repoRoot, nodeID, filePath string) (string, error) {
	changes, err := s.changes(ctx, nodeID)
	if err != nil {
		return "", err
	}

	for _, change := range changes {
		if change.To.Name != filePath && change.From.Name != filePath {
			continue
		}
		patch, err := change.PatchContext(ctx)
		if err != nil {
			return "", fmt.Errorf("computing patch for %s at %s: %w", filePath, nodeID, err)
		}
		return patch.String(), nil
	}
	return "", fmt.Errorf("no change for %s at %s", filePath, nodeID)
}

// changes diffs the node's tree against its first parent's tree, or the
// empty tree for a root commit.
func (s *Source) changes(ctx context.Context, nodeID string) (object.Changes, error) {
	hash, err := s.repo.ResolveRevision(plumbing.Revision(nodeID))
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", nodeID, err)
	}
	commit, err := s.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("loading commit %s: %w", nodeID, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("loading tree of %s: %w", nodeID, err)
	}

	// A nil parent tree diffs against the empty tree, which covers root
	// commits.
	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("loading parent of %s: %w", nodeID, err)
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return nil, fmt.Errorf("loading parent tree of %s: %w", nodeID, err)
		}
	}

	changes, err := object.DiffTreeWithOptions(ctx, parentTree, tree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, fmt.Errorf("diffing trees of %s: %w", nodeID, err)
	}
	return changes, nil
}
