package junitxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MixedStatuses(t *testing.T) {
	document := `<testsuite><testcase name="a" time="0.1"/><testcase name="b" time="0.2"><failure>x</failure></testcase><testcase name="c" time="0.0"><skipped/></testcase></testsuite>`

	summary, err := Parse(document)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)
	assert.InDelta(t, 0.3, summary.DurationSeconds, 1e-9)
	require.Len(t, summary.Cases, 3)

	assert.Equal(t, Case{Name: "a", DurationSeconds: 0.1, Status: StatusPassed}, summary.Cases[0])
	assert.Equal(t, Case{Name: "b", DurationSeconds: 0.2, Status: StatusFailed}, summary.Cases[1])
	assert.Equal(t, Case{Name: "c", DurationSeconds: 0.0, Status: StatusSkipped}, summary.Cases[2])
}

func TestParse_CountInvariant(t *testing.T) {
	document := `<testsuite>
		<testcase name="one" time="1.5"/>
		<testcase name="two"><error>boom</error></testcase>
		<testcase name="three"><skipped/></testcase>
		<testcase name="four" time="0.25"/>
	</testsuite>`

	summary, err := Parse(document)
	require.NoError(t, err)

	assert.Equal(t, len(summary.Cases), summary.Passed+summary.Failed+summary.Skipped)
	assert.InDelta(t, 1.75, summary.DurationSeconds, 1e-9)
}

func TestParse_RejectsDoctype(t *testing.T) {
	documents := []string{
		`<!DOCTYPE testsuite SYSTEM "http://evil.example/dtd"><testsuite/>`,
		`<!doctype foo><testsuite/>`,
		`<!DOCTYPE foo [<!ENTITY xxe SYSTEM "file:///etc/passwd">]><testsuite>&xxe;</testsuite>`,
		// Not even well-formed: the security gate still fires first.
		`<!DOCTYPE broken><testsuite><unclosed>`,
	}

	for _, document := range documents {
		summary, err := Parse(document)

		assert.Nil(t, summary)
		var unsafeErr *UnsafeDocumentError
		require.ErrorAs(t, err, &unsafeErr, "document %q", document)
		assert.Contains(t, unsafeErr.Error(), "DOCTYPE")
	}
}

func TestParse_RejectsEntityDeclaration(t *testing.T) {
	summary, err := Parse(`<!ENTITY x "y"><testsuite/>`)

	assert.Nil(t, summary)
	var unsafeErr *UnsafeDocumentError
	require.ErrorAs(t, err, &unsafeErr)
}

func TestParse_Malformed(t *testing.T) {
	documents := []string{
		``,
		`not xml at all`,
		`<testsuite><testcase name="a">`,
		`<testsuite></wrong>`,
	}

	for _, document := range documents {
		summary, err := Parse(document)

		assert.Nil(t, summary, "document %q", document)
		var malformedErr *MalformedDocumentError
		require.ErrorAs(t, err, &malformedErr, "document %q", document)
	}
}

func TestParse_FailureWinsOverSkip(t *testing.T) {
	document := `<testsuite><testcase name="both"><failure>f</failure><skipped/></testcase></testsuite>`

	summary, err := Parse(document)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, StatusFailed, summary.Cases[0].Status)
}

func TestParse_DurationDefaults(t *testing.T) {
	tests := []struct {
		name     string
		document string
		want     float64
	}{
		{"absent", `<testsuite><testcase name="a"/></testsuite>`, 0},
		{"non-numeric", `<testsuite><testcase name="a" time="fast"/></testsuite>`, 0},
		{"negative", `<testsuite><testcase name="a" time="-1"/></testsuite>`, 0},
		{"numeric", `<testsuite><testcase name="a" time="2.5"/></testsuite>`, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := Parse(tt.document)
			require.NoError(t, err)
			require.Len(t, summary.Cases, 1)
			assert.Equal(t, tt.want, summary.Cases[0].DurationSeconds)
		})
	}
}

func TestParse_TestsuitesWrapper(t *testing.T) {
	document := `<testsuites>
		<testsuite name="pkg1"><testcase name="a" time="0.1"/></testsuite>
		<testsuite name="pkg2"><testcase name="b" time="0.2"><failure/></testcase></testsuite>
	</testsuites>`

	summary, err := Parse(document)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Cases, 2)
	assert.Equal(t, "a", summary.Cases[0].Name)
	assert.Equal(t, "b", summary.Cases[1].Name)
}

func TestParse_EmptySuite(t *testing.T) {
	summary, err := Parse(`<testsuite/>`)
	require.NoError(t, err)

	assert.Zero(t, summary.Passed)
	assert.Zero(t, summary.Failed)
	assert.Zero(t, summary.Skipped)
	assert.Empty(t, summary.Cases)
}
