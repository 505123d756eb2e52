package main

import (
	"log/slog"

	"github.com/haldun-rowe/gitstory/internal/commitdata"
	"github.com/haldun-rowe/gitstory/internal/config"
	"github.com/haldun-rowe/gitstory/internal/gitsource"
	"github.com/haldun-rowe/gitstory/internal/tracestore"
)

// newAccessor builds a commit data accessor for one invocation. Demo mode
// (flag or config) needs no repository; otherwise the repository under
// --repo is opened and wired in as the collaborators.
func newAccessor(cfg *config.Config) (*commitdata.Accessor, error) {
	if globalOpts.Demo || cfg.Ingest.DemoMode {
		return commitdata.NewAccessor(commitdata.ModeDemo, commitdata.Repository{}, commitdata.Deps{}), nil
	}

	source, err := gitsource.Open(globalOpts.RepoRoot)
	if err != nil {
		return nil, err
	}
	slog.Debug("opened repository", "root", globalOpts.RepoRoot, "id", source.RepoID())

	repo := commitdata.Repository{
		Ready: true,
		Root:  globalOpts.RepoRoot,
		ID:    source.RepoID(),
	}
	deps := commitdata.Deps{
		Diffs:  source,
		Index:  source,
		Traces: tracestore.NewStore(globalOpts.RepoRoot),
	}
	return commitdata.NewAccessor(commitdata.ModeRepo, repo, deps), nil
}
