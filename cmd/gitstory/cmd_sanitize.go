package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haldun-rowe/gitstory/internal/render"
	"github.com/haldun-rowe/gitstory/internal/session"
)

func newSanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize <session-json-file>",
		Short: "Sanitize a session payload and print the result",
		Long: `Sanitize a session payload and print the result.

The sanitized payload is written to stdout as JSON; the redaction hit
summary goes to stderr. Payloads whose shape is not recognized pass
through unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			raw, err := readArtifact(cfg, args[0])
			if err != nil {
				return err
			}

			var payload any
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("could not parse %s: %w", args[0], err)
			}

			sanitizer := session.NewSanitizer(redactionEngine(cfg))
			sanitized, hits := sanitizer.SanitizeMessages(payload)

			out, err := json.MarshalIndent(sanitized, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			fmt.Fprint(cmd.ErrOrStderr(), render.Hits(hits))
			return nil
		},
	}
}
