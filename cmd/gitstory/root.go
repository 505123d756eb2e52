package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haldun-rowe/gitstory/internal/config"
	"github.com/haldun-rowe/gitstory/internal/redact"
)

// GlobalOpts holds global options parsed before subcommand dispatch.
type GlobalOpts struct {
	RepoRoot string
	Demo     bool
	Verbose  bool
}

var globalOpts GlobalOpts

// NewRootCmd creates the root cobra command for gitstory.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitstory",
		Short: "Sanitized ingestion of commit-history artifacts",
		Long: `gitstory - sanitized ingestion of commit-history artifacts

gitstory converts untrusted CI test reports, connector review snapshots, and
agent session transcripts into sanitized structured records, and resolves
per-commit changed files, diffs, and agent-trace ranges.`,
		SilenceErrors: true, // error printing happens in main
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if globalOpts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().StringVar(&globalOpts.RepoRoot, "repo", ".", "repository root")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.Demo, "demo", false, "serve demo fixture data instead of repository data")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.Verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(
		newReportCmd(),
		newContextCmd(),
		newSanitizeCmd(),
		newFilesCmd(),
		newDiffCmd(),
		newTracesCmd(),
	)

	return rootCmd
}

// loadConfig loads the user configuration, falling back to defaults with a
// warning when the dotfile is unusable.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("falling back to default configuration", "error", err)
		return config.DefaultConfig()
	}
	return cfg
}

// redactionEngine builds the engine the configuration asks for.
func redactionEngine(cfg *config.Config) *redact.Engine {
	if cfg.Ingest.RedactCredentials {
		return redact.NewEngine()
	}
	return redact.NewEnvelopeEngine()
}

// readArtifact reads one artifact file, enforcing the configured size cap.
func readArtifact(cfg *config.Config, path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > cfg.Ingest.MaxArtifactSize {
		return nil, &artifactTooLargeError{path: path, size: info.Size(), limit: cfg.Ingest.MaxArtifactSize}
	}
	return os.ReadFile(path)
}

type artifactTooLargeError struct {
	path  string
	size  int64
	limit int64
}

func (e *artifactTooLargeError) Error() string {
	return "artifact " + e.path + " exceeds the configured size limit"
}
