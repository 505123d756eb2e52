// Package redact replaces tool-call envelopes and credential-shaped tokens
// in free text with labeled placeholder markers.
//
// The scan is lexical, not a parser: envelope contents are treated opaquely
// and the first closing delimiter terminates a match. Inline JSON fragments
// are matched with a single-level bracket span, so deeply nested braces are
// a documented limitation rather than a correctness guarantee.
package redact

import (
	"fmt"
	"regexp"
)

// Hit records how many times one pattern family matched during a single
// sanitization pass.
type Hit struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// Result is the outcome of one sanitization pass. Sanitized contains no
// occurrence of any pattern the engine recognizes; every suppressed span is
// replaced by a "[REDACTED:<KIND>]" marker so document structure survives
// for rendering.
type Result struct {
	Sanitized string `json:"sanitized"`
	Hits      []Hit  `json:"hits"`
}

// TotalHits sums the counts across all hit entries.
func (r Result) TotalHits() int {
	total := 0
	for _, h := range r.Hits {
		total += h.Count
	}
	return total
}

type family struct {
	kind    string
	pattern *regexp.Regexp
}

// Envelope families run before credential families so that a credential
// inside an envelope is consumed by the envelope replacement and never
// produces a second, overlapping hit.
var envelopeFamilies = []family{
	{"TOOL_CALL_BLOCK", regexp.MustCompile(`(?s)<tool_call>.*?</tool_call>`)},
	{"TOOL_RESULT_BLOCK", regexp.MustCompile(`(?s)<tool_result>.*?</tool_result>`)},
	{"INLINE_TOOL_JSON", regexp.MustCompile(`"(?:tool_call|tool_result|function_call)"\s*:\s*\{[^{}]*\}`)},
}

var credentialFamilies = []family{
	{"OPENAI_KEY", regexp.MustCompile(`\bsk-[A-Za-z0-9]{20,}\b`)},
	{"GITHUB_TOKEN", regexp.MustCompile(`\bghp_[A-Za-z0-9]{20,}\b`)},
	{"AWS_ACCESS_KEY", regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`)},
	{"PRIVATE_KEY_BLOCK", regexp.MustCompile(`-----BEGIN[\s\S]*?PRIVATE KEY-----[\s\S]*?-----END[\s\S]*?PRIVATE KEY-----`)},
	{"BEARER_TOKEN", regexp.MustCompile(`\bBearer\s+[A-Za-z0-9._-]+\b`)},
}

// Engine applies a fixed, ordered set of pattern families. Each family's
// replacement happens before the next family scans, so overlapping matches
// across families cannot re-expose redacted content.
type Engine struct {
	families []family
}

// NewEngine creates an engine covering both envelope and credential
// families. This is the engine the sanitization components use by default.
func NewEngine() *Engine {
	families := make([]family, 0, len(envelopeFamilies)+len(credentialFamilies))
	families = append(families, envelopeFamilies...)
	families = append(families, credentialFamilies...)
	return &Engine{families: families}
}

// NewEnvelopeEngine creates an engine covering only the tool-call envelope
// families. Used when credential redaction is disabled in configuration.
func NewEnvelopeEngine() *Engine {
	families := make([]family, len(envelopeFamilies))
	copy(families, envelopeFamilies)
	return &Engine{families: families}
}

// Sanitize rewrites input, replacing every recognized span with a
// placeholder marker naming its pattern family. It is a pure function and
// idempotent on its own output: placeholder markers match no family, so
// re-sanitizing sanitized text yields zero hits and an unchanged string.
func (e *Engine) Sanitize(input string) Result {
	sanitized := input
	var hits []Hit

	for _, f := range e.families {
		matches := len(f.pattern.FindAllStringIndex(sanitized, -1))
		if matches == 0 {
			continue
		}
		marker := fmt.Sprintf("[REDACTED:%s]", f.kind)
		sanitized = f.pattern.ReplaceAllString(sanitized, marker)
		hits = append(hits, Hit{Kind: f.kind, Count: matches})
	}

	return Result{Sanitized: sanitized, Hits: hits}
}

// MergeHits folds src into dst: counts of the same kind are summed, and the
// order of first appearance is preserved. The returned slice may alias dst.
func MergeHits(dst []Hit, src []Hit) []Hit {
	for _, hit := range src {
		merged := false
		for i := range dst {
			if dst[i].Kind == hit.Kind {
				dst[i].Count += hit.Count
				merged = true
				break
			}
		}
		if !merged {
			dst = append(dst, hit)
		}
	}
	return dst
}

var defaultEngine = NewEngine()

// Sanitize is a convenience function using the default full engine.
func Sanitize(input string) Result {
	return defaultEngine.Sanitize(input)
}
