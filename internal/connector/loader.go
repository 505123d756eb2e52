// Package connector discovers and projects review/PR context artifacts
// written by external integrations under a repository's connectors
// namespace.
//
// Artifact text is untrusted: every field exposed for rendering is
// HTML-escaped and then redacted. Load failures become an error state, never
// a returned error, because missing or malformed external context must not
// block the narrative view.
package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"path"
	"strings"

	"github.com/haldun-rowe/gitstory/internal/redact"
)

// Namespace is the per-repository directory connector integrations write
// their artifacts into, as connectors/<provider>/<snapshot>.json.
const Namespace = "connectors"

// FileAccess is the injected file-discovery collaborator. ListFiles returns
// relative paths under root in discovery order; implementations should list
// lexicographically so date-stamped snapshot names sort oldest to newest.
type FileAccess interface {
	ListFiles(root string) ([]string, error)
	ReadFile(root, relativePath string) ([]byte, error)
}

// ParseError describes a connector artifact that was present but not valid
// or expected JSON. It is captured into the error state rather than
// propagated across the component boundary.
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("connector artifact %s: %v", e.Path, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Loader performs a single round of connector artifact discovery.
type Loader struct {
	files     FileAccess
	engine    *redact.Engine
	providers map[string]bool
}

// NewLoader creates a Loader. providers is an allowlist of connector
// provider directory names; an empty allowlist admits all providers.
func NewLoader(files FileAccess, engine *redact.Engine, providers []string) *Loader {
	allow := make(map[string]bool, len(providers))
	for _, p := range providers {
		allow[p] = true
	}
	return &Loader{files: files, engine: engine, providers: allow}
}

// Load runs one discovery round under repositoryRoot and returns the
// resulting state. There is no retry or poll loop; callers that are torn
// down mid-load simply discard the result.
//
// When multiple artifacts exist, only the latest by discovery order is
// projected into the current state.
func (l *Loader) Load(ctx context.Context, repositoryRoot string) State {
	if err := ctx.Err(); err != nil {
		return Errored(err.Error())
	}

	paths, err := l.files.ListFiles(repositoryRoot)
	if err != nil {
		return Errored(fmt.Sprintf("listing connector artifacts: %v", err))
	}

	latest := ""
	for _, rel := range paths {
		if l.isArtifact(rel) {
			latest = rel
		}
	}
	if latest == "" {
		return Empty()
	}

	raw, err := l.files.ReadFile(repositoryRoot, latest)
	if err != nil {
		return Errored(fmt.Sprintf("reading connector artifact %s: %v", latest, err))
	}

	entry, err := l.project(latest, raw)
	if err != nil {
		return Errored(err.Error())
	}
	return Ready([]Entry{entry})
}

// isArtifact reports whether a relative path is a JSON artifact inside the
// connectors namespace, from a provider the allowlist admits.
func (l *Loader) isArtifact(rel string) bool {
	rel = path.Clean(strings.ReplaceAll(rel, "\\", "/"))
	if !strings.HasPrefix(rel, Namespace+"/") {
		return false
	}
	if path.Ext(rel) != ".json" {
		return false
	}
	if len(l.providers) == 0 {
		return true
	}
	parts := strings.Split(rel, "/")
	return len(parts) >= 3 && l.providers[parts[1]]
}

// artifact is the expected connector file shape. Pointer fields distinguish
// absent from empty: a half-populated context card must never render, so
// every required field is checked for presence.
type artifact struct {
	PullRequest *struct {
		Number  *int    `json:"number"`
		Title   *string `json:"title"`
		Body    *string `json:"body"`
		HTMLURL *string `json:"html_url"`
	} `json:"pull_request"`
	ReviewSummary *string `json:"review_summary"`
}

func (l *Loader) project(rel string, raw []byte) (Entry, error) {
	var doc artifact
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Entry{}, &ParseError{Path: rel, Cause: err}
	}

	pr := doc.PullRequest
	if pr == nil || pr.Number == nil || pr.Title == nil || pr.Body == nil || pr.HTMLURL == nil {
		return Entry{}, &ParseError{Path: rel, Cause: fmt.Errorf("missing required pull_request fields")}
	}

	body := *pr.Body
	if doc.ReviewSummary != nil && *doc.ReviewSummary != "" {
		body = body + "\n\n" + *doc.ReviewSummary
	}

	// Escape first, then redact, so redaction markers themselves survive
	// untouched and nothing re-introduces markup-significant bytes.
	title := l.engine.Sanitize(html.EscapeString(*pr.Title))
	cleanBody := l.engine.Sanitize(html.EscapeString(body))

	return Entry{
		Title:         title.Sanitized,
		Body:          cleanBody.Sanitized,
		URL:           *pr.HTMLURL,
		RedactionHits: title.TotalHits() + cleanBody.TotalHits(),
	}, nil
}
