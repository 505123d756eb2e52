// Package junitxml parses CI test-report documents into aggregate pass/fail
// counts and per-case records.
//
// The input is untrusted. Any document declaring a DOCTYPE or entity
// definition is rejected on the raw text, before the XML decoder sees a
// single byte, so entity expansion can never be triggered by a parse step.
package junitxml

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Status classifies a single test case.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Case is one test-case record in document order.
type Case struct {
	Name            string  `json:"name"`
	DurationSeconds float64 `json:"duration_seconds"`
	Status          Status  `json:"status"`
}

// Summary aggregates a whole report. Passed+Failed+Skipped always equals
// len(Cases), and DurationSeconds is the order-stable sum of case durations.
type Summary struct {
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Skipped         int     `json:"skipped"`
	DurationSeconds float64 `json:"duration_seconds"`
	Cases           []Case  `json:"cases"`
}

// unsafeConstructs are scanned for case-insensitively in the raw document.
// The scan runs before any decoding so a rejection can never be the result
// of a permissive parse having already resolved something.
var unsafeConstructs = []string{"<!DOCTYPE", "<!ENTITY"}

// Parse converts a test-report document into a Summary.
//
// It returns *UnsafeDocumentError when the document declares a DOCTYPE or
// entity definition, and *MalformedDocumentError when the document is not
// well-formed XML. Both are fatal to the parse; no partial summary is
// returned.
func Parse(document string) (*Summary, error) {
	upper := strings.ToUpper(document)
	for _, construct := range unsafeConstructs {
		if strings.Contains(upper, construct) {
			return nil, &UnsafeDocumentError{Construct: construct}
		}
	}

	decoder := xml.NewDecoder(strings.NewReader(document))
	// Belt and braces: the raw scan above already rejected entity
	// declarations, so only predefined entities remain resolvable.
	decoder.Entity = map[string]string{}

	summary := &Summary{}
	sawRoot := false

	// caseDepth tracks nesting inside the current <testcase>; records are
	// only opened at depth zero so a malformed nested testcase cannot
	// produce extra records.
	caseDepth := 0
	var current Case
	currentFailed := false
	currentSkipped := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedDocumentError{Cause: err}
		}

		switch t := token.(type) {
		case xml.Directive:
			// Unreachable after the raw scan, kept as a second gate.
			return nil, &UnsafeDocumentError{Construct: "<!" + directiveName(t)}
		case xml.StartElement:
			sawRoot = true
			name := t.Name.Local
			if name == "testcase" {
				if caseDepth == 0 {
					current = Case{
						Name:            attr(t, "name"),
						DurationSeconds: parseDuration(attr(t, "time")),
					}
					currentFailed = false
					currentSkipped = false
				}
				caseDepth++
				continue
			}
			if caseDepth > 0 {
				switch name {
				case "failure", "error":
					currentFailed = true
				case "skipped":
					currentSkipped = true
				}
			}
		case xml.EndElement:
			if t.Name.Local == "testcase" && caseDepth > 0 {
				caseDepth--
				if caseDepth == 0 {
					// Failure wins over skip so a case is never double-counted.
					switch {
					case currentFailed:
						current.Status = StatusFailed
						summary.Failed++
					case currentSkipped:
						current.Status = StatusSkipped
						summary.Skipped++
					default:
						current.Status = StatusPassed
						summary.Passed++
					}
					summary.DurationSeconds += current.DurationSeconds
					summary.Cases = append(summary.Cases, current)
				}
			}
		}
	}

	if !sawRoot {
		return nil, &MalformedDocumentError{Cause: errors.New("no root element")}
	}

	return summary, nil
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// parseDuration returns the time attribute in seconds, defaulting to 0 for
// absent, non-numeric, or negative values.
func parseDuration(raw string) float64 {
	if raw == "" {
		return 0
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || seconds < 0 {
		return 0
	}
	return seconds
}

func directiveName(d xml.Directive) string {
	fields := strings.Fields(string(d))
	if len(fields) == 0 {
		return "DIRECTIVE"
	}
	return strings.ToUpper(fields[0])
}
