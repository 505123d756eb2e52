package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haldun-rowe/gitstory/internal/render"
)

func newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files <node>",
		Short: "List the changed files of a commit node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accessor, err := newAccessor(loadConfig())
			if err != nil {
				return err
			}

			files, err := accessor.FilesForNode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.FileChanges(files))
			return nil
		},
	}
}
