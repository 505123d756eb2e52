package commitdata

import "context"

// Mode selects the data source the accessor projects over.
type Mode string

const (
	// ModeDemo serves static fixture data; no collaborator is consulted.
	ModeDemo Mode = "demo"
	// ModeRepo delegates to the injected git collaborators.
	ModeRepo Mode = "repo"
	// ModeSpeculate is a forward-looking view with no committed data yet;
	// every lookup yields empty results.
	ModeSpeculate Mode = "speculate"
)

// ChangeStatus classifies one changed file within a commit.
type ChangeStatus string

const (
	StatusAdded    ChangeStatus = "added"
	StatusModified ChangeStatus = "modified"
	StatusDeleted  ChangeStatus = "deleted"
)

// FileChange is one changed file of a commit-graph node.
type FileChange struct {
	Path   string       `json:"path"`
	Status ChangeStatus `json:"status"`
}

// TraceRange associates a region of a file's diff with an agent-generated
// annotation, resolved per commit node.
type TraceRange struct {
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	Summary   string `json:"summary"`
	SessionID string `json:"session_id"`
}

// Repository is the externally supplied repository state. The accessor
// tracks no lifecycle of its own; it is a stateless projection over this
// value except for the diff cache.
type Repository struct {
	Ready bool
	Root  string
	ID    string
}

// DiffProvider computes the textual diff of one file at one node.
type DiffProvider interface {
	Diff(ctx context.Context, repoRoot, nodeID, filePath string) (string, error)
}

// FileIndexer resolves the changed files of a node. Implementations may
// cache by node internally.
type FileIndexer interface {
	Files(ctx context.Context, repoRoot, nodeID string) ([]FileChange, error)
}

// TraceProvider resolves agent-trace ranges keyed by a stable repository
// identifier plus node and file.
type TraceProvider interface {
	Traces(ctx context.Context, repoID, nodeID, filePath string) ([]TraceRange, error)
}

// Deps bundles the injected collaborators.
type Deps struct {
	Diffs  DiffProvider
	Index  FileIndexer
	Traces TraceProvider
}
