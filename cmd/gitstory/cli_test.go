package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the command tree with args, capturing stdout and stderr.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReportCommand(t *testing.T) {
	path := writeTempFile(t, "junit.xml",
		`<testsuite><testcase name="ok" time="0.1"/><testcase name="bad"><failure/></testcase></testsuite>`)

	stdout, _, err := runCLI(t, "report", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "1 passed")
	assert.Contains(t, stdout, "1 failed")
}

func TestReportCommand_RejectsDoctype(t *testing.T) {
	path := writeTempFile(t, "junit.xml", `<!DOCTYPE x><testsuite/>`)

	_, _, err := runCLI(t, "report", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DOCTYPE")
}

func TestSanitizeCommand(t *testing.T) {
	path := writeTempFile(t, "session.json",
		`{"messages":[{"role":"user","text":"<tool_result>data</tool_result>"}]}`)

	stdout, stderr, err := runCLI(t, "sanitize", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "[REDACTED:TOOL_RESULT_BLOCK]")
	assert.NotContains(t, stdout, "<tool_result>")
	assert.Contains(t, stderr, "TOOL_RESULT_BLOCK")
}

func TestContextCommand_EmptyRepo(t *testing.T) {
	stdout, _, err := runCLI(t, "--repo", t.TempDir(), "context")

	require.NoError(t, err)
	assert.Contains(t, stdout, "no external context")
}

func TestFilesCommand_DemoMode(t *testing.T) {
	stdout, _, err := runCLI(t, "--demo", "files", "any-node")

	require.NoError(t, err)
	assert.Contains(t, stdout, "cmd/widget/main.go")
}

func TestDiffCommand_DemoMode(t *testing.T) {
	stdout, _, err := runCLI(t, "--demo", "diff", "any-node", "cmd/widget/main.go")

	require.NoError(t, err)
	assert.Contains(t, stdout, "+package main")
}

func TestTracesCommand_DemoMode(t *testing.T) {
	stdout, _, err := runCLI(t, "--demo", "traces", "any-node", "main.go")

	require.NoError(t, err)
	assert.Contains(t, stdout, "no trace ranges")
}
