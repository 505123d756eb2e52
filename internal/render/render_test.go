package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haldun-rowe/gitstory/internal/commitdata"
	"github.com/haldun-rowe/gitstory/internal/connector"
	"github.com/haldun-rowe/gitstory/internal/junitxml"
	"github.com/haldun-rowe/gitstory/internal/redact"
)

func TestTestSummary_ContainsCountsAndCases(t *testing.T) {
	summary := &junitxml.Summary{
		Passed: 2, Failed: 1, Skipped: 0, DurationSeconds: 1.5,
		Cases: []junitxml.Case{
			{Name: "TestA", DurationSeconds: 1.0, Status: junitxml.StatusPassed},
			{Name: "TestB", DurationSeconds: 0.5, Status: junitxml.StatusFailed},
		},
	}

	out := TestSummary(summary)

	assert.Contains(t, out, "2 passed")
	assert.Contains(t, out, "1 failed")
	assert.Contains(t, out, "TestA")
	assert.Contains(t, out, "TestB")
}

func TestContextState_EmptyAndError(t *testing.T) {
	empty, err := ContextState(connector.Empty())
	require.NoError(t, err)
	assert.Contains(t, empty, "no external context")

	errored, err := ContextState(connector.Errored("bad artifact"))
	require.NoError(t, err)
	assert.Contains(t, errored, "bad artifact")
}

func TestContextState_Ready(t *testing.T) {
	state := connector.Ready([]connector.Entry{{
		Title:         "Add parser",
		Body:          "body text",
		URL:           "https://example.com/pr/1",
		RedactionHits: 2,
	}})

	out, err := ContextState(state)
	require.NoError(t, err)

	assert.Contains(t, out, "Add parser")
	assert.Contains(t, out, "https://example.com/pr/1")
	assert.Contains(t, out, "2 redaction(s) applied")
}

func TestHits(t *testing.T) {
	out := Hits([]redact.Hit{{Kind: "TOOL_CALL_BLOCK", Count: 3}})
	assert.Contains(t, out, "TOOL_CALL_BLOCK")
	assert.Contains(t, out, "3")

	assert.Contains(t, Hits(nil), "no redactions")
}

func TestFileChanges(t *testing.T) {
	out := FileChanges([]commitdata.FileChange{
		{Path: "a.go", Status: commitdata.StatusAdded},
		{Path: "b.go", Status: commitdata.StatusDeleted},
	})

	assert.Contains(t, out, "a.go")
	assert.Contains(t, out, "b.go")
	assert.Contains(t, FileChanges(nil), "no changed files")
}
