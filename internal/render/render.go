// Package render formats ingestion results for terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/haldun-rowe/gitstory/internal/commitdata"
	"github.com/haldun-rowe/gitstory/internal/connector"
	"github.com/haldun-rowe/gitstory/internal/junitxml"
	"github.com/haldun-rowe/gitstory/internal/redact"
)

var (
	passedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// TestSummary renders the aggregate line plus one line per case.
func TestSummary(summary *junitxml.Summary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Test results"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
		passedStyle.Render(fmt.Sprintf("%d passed", summary.Passed)),
		failedStyle.Render(fmt.Sprintf("%d failed", summary.Failed)),
		skippedStyle.Render(fmt.Sprintf("%d skipped", summary.Skipped)),
		dimStyle.Render(fmt.Sprintf("%.2fs", summary.DurationSeconds)),
	))

	for _, c := range summary.Cases {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			statusIcon(c.Status), c.Name, dimStyle.Render(fmt.Sprintf("(%.2fs)", c.DurationSeconds))))
	}
	return b.String()
}

func statusIcon(status junitxml.Status) string {
	switch status {
	case junitxml.StatusFailed:
		return failedStyle.Render("✗")
	case junitxml.StatusSkipped:
		return skippedStyle.Render("-")
	default:
		return passedStyle.Render("✔")
	}
}

// ContextCard renders one external-context entry; the body is treated as
// markdown. Entry text is already HTML-inert and redacted by the loader.
func ContextCard(entry connector.Entry) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	body, err := renderer.Render(entry.Body)
	if err != nil {
		return "", fmt.Errorf("rendering context body: %w", err)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(entry.Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(entry.URL))
	b.WriteString("\n")
	b.WriteString(body)
	if entry.RedactionHits > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d redaction(s) applied\n", entry.RedactionHits)))
	}
	return b.String(), nil
}

// ContextState renders any load outcome, including the dismissible-notice
// form of the error state.
func ContextState(state connector.State) (string, error) {
	switch state.Kind {
	case connector.StateEmpty:
		return dimStyle.Render("no external context found") + "\n", nil
	case connector.StateError:
		return failedStyle.Render("external context unavailable: "+state.Reason) + "\n", nil
	default:
		var b strings.Builder
		for _, entry := range state.Entries {
			card, err := ContextCard(entry)
			if err != nil {
				return "", err
			}
			b.WriteString(card)
		}
		return b.String(), nil
	}
}

// Hits renders a redaction hit summary, one kind per line.
func Hits(hits []redact.Hit) string {
	if len(hits) == 0 {
		return dimStyle.Render("no redactions") + "\n"
	}
	var b strings.Builder
	for _, hit := range hits {
		b.WriteString(fmt.Sprintf("%s ×%d\n", hit.Kind, hit.Count))
	}
	return b.String()
}

// FileChanges renders one changed file per line.
func FileChanges(files []commitdata.FileChange) string {
	if len(files) == 0 {
		return dimStyle.Render("no changed files") + "\n"
	}
	var b strings.Builder
	for _, f := range files {
		b.WriteString(fmt.Sprintf("%s %s\n", changeIcon(f.Status), f.Path))
	}
	return b.String()
}

func changeIcon(status commitdata.ChangeStatus) string {
	switch status {
	case commitdata.StatusAdded:
		return passedStyle.Render("A")
	case commitdata.StatusDeleted:
		return failedStyle.Render("D")
	default:
		return skippedStyle.Render("M")
	}
}
