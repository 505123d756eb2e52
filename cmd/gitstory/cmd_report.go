package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haldun-rowe/gitstory/internal/junitxml"
	"github.com/haldun-rowe/gitstory/internal/render"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <junit-xml-file>",
		Short: "Parse a CI test report and print its summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			raw, err := readArtifact(cfg, args[0])
			if err != nil {
				return err
			}

			summary, err := junitxml.Parse(string(raw))
			if err != nil {
				var unsafeErr *junitxml.UnsafeDocumentError
				if errors.As(err, &unsafeErr) {
					return fmt.Errorf("rejected %s: %w", args[0], err)
				}
				return fmt.Errorf("could not parse %s: %w", args[0], err)
			}

			fmt.Fprint(cmd.OutOrStdout(), render.TestSummary(summary))
			return nil
		},
	}
}
