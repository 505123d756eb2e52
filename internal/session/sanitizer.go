// Package session sanitizes conversational session payloads before they are
// persisted or rendered.
//
// The payload shape is only semi-trusted: importers hand over whatever the
// source tool wrote. Payloads this package does not understand are passed
// through unchanged rather than rejected, a deliberate availability-first
// policy that differs from the fail-closed test-report parser.
package session

import (
	"github.com/haldun-rowe/gitstory/internal/redact"
	"github.com/mitchellh/mapstructure"
)

// Message is the recognized conversational-turn shape. Anything that fails
// to decode into it is silently dropped, not passed through.
type Message struct {
	Role  string   `mapstructure:"role"`
	Text  string   `mapstructure:"text"`
	Files []string `mapstructure:"files"`
}

var validRoles = map[string]bool{
	"user":      true,
	"assistant": true,
}

// Sanitizer runs the redaction engine across the messages of a session
// payload.
type Sanitizer struct {
	engine *redact.Engine
}

// NewSanitizer creates a Sanitizer backed by the given redaction engine.
func NewSanitizer(engine *redact.Engine) *Sanitizer {
	return &Sanitizer{engine: engine}
}

// SanitizeMessages returns a sanitized copy of payload together with the
// merged redaction hits from every surviving message.
//
// The input is never mutated. Payloads that are not object-shaped, or that
// lack a messages sequence, are returned unchanged with no hits. Message
// elements failing the shape check (role must be user or assistant, text
// must be a string, files when present must be a string sequence) are
// dropped. When every message drops, the original payload is returned
// unchanged so "no recognized messages" behaves like "nothing to sanitize".
func (s *Sanitizer) SanitizeMessages(payload any) (any, []redact.Hit) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return payload, nil
	}
	rawMessages, ok := obj["messages"].([]any)
	if !ok {
		return payload, nil
	}

	var hits []redact.Hit
	sanitized := make([]any, 0, len(rawMessages))

	for _, raw := range rawMessages {
		msg, ok := decodeMessage(raw)
		if !ok {
			continue
		}

		result := s.engine.Sanitize(msg.Text)
		hits = redact.MergeHits(hits, result.Hits)

		clean := map[string]any{
			"role": msg.Role,
			"text": result.Sanitized,
		}
		if msg.Files != nil {
			files := make([]string, len(msg.Files))
			copy(files, msg.Files)
			clean["files"] = files
		}
		sanitized = append(sanitized, clean)
	}

	if len(sanitized) == 0 {
		return payload, hits
	}

	out := make(map[string]any, len(obj))
	for key, value := range obj {
		out[key] = value
	}
	out["messages"] = sanitized
	return out, hits
}

// decodeMessage applies the shape check. mapstructure rejects type
// mismatches (a numeric text, a scalar files field), and presence of the
// text key plus a recognized role are verified on the raw map.
func decodeMessage(raw any) (Message, bool) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return Message{}, false
	}
	if _, ok := fields["text"].(string); !ok {
		return Message{}, false
	}

	var msg Message
	if err := mapstructure.Decode(fields, &msg); err != nil {
		return Message{}, false
	}
	if !validRoles[msg.Role] {
		return Message{}, false
	}
	if rawFiles, ok := fields["files"]; ok {
		if _, ok := rawFiles.([]any); !ok {
			// A files field that decoded but was not a sequence (for
			// example an already-typed []string) is still acceptable; only
			// plain non-sequence values are rejected.
			if _, ok := rawFiles.([]string); !ok {
				return Message{}, false
			}
		}
	}
	return msg, true
}

var defaultSanitizer = NewSanitizer(redact.NewEngine())

// SanitizeMessages is a convenience function using the default full-engine
// sanitizer.
func SanitizeMessages(payload any) (any, []redact.Hit) {
	return defaultSanitizer.SanitizeMessages(payload)
}
