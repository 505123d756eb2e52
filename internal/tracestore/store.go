// Package tracestore serves agent-trace annotations from a per-repository
// JSON sidecar file.
package tracestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/haldun-rowe/gitstory/internal/commitdata"
)

// FileName is the sidecar file holding trace ranges, relative to the
// repository root.
const FileName = ".gitstory/traces.json"

// traceIndex is keyed repoID -> nodeID -> filePath -> ranges.
type traceIndex map[string]map[string]map[string][]commitdata.TraceRange

// Store implements commitdata.TraceProvider over a traces sidecar file read
// once at construction. Trace data is advisory: a missing file or key
// yields an empty result, never an error, matching the degraded-display
// policy of the layer it serves.
type Store struct {
	index traceIndex
}

// NewStore loads the sidecar file under repositoryRoot. An absent or
// unreadable file produces an empty store.
func NewStore(repositoryRoot string) *Store {
	raw, err := os.ReadFile(filepath.Join(repositoryRoot, filepath.FromSlash(FileName)))
	if err != nil {
		return &Store{index: traceIndex{}}
	}

	var index traceIndex
	if err := json.Unmarshal(raw, &index); err != nil {
		return &Store{index: traceIndex{}}
	}
	return &Store{index: index}
}

// Traces implements commitdata.TraceProvider.
func (s *Store) Traces(ctx context.Context, repoID, nodeID, filePath string) ([]commitdata.TraceRange, error) {
	nodes, ok := s.index[repoID]
	if !ok {
		return nil, nil
	}
	files, ok := nodes[nodeID]
	if !ok {
		return nil, nil
	}
	ranges := files[filePath]
	out := make([]commitdata.TraceRange, len(ranges))
	copy(out, ranges)
	return out, nil
}
