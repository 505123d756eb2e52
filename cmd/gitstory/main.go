// Command gitstory ingests commit-history artifacts - CI test reports,
// review context, agent session transcripts - into sanitized structured
// records, and serves per-commit file and diff lookups.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gitstory:", err)
		os.Exit(1)
	}
}
