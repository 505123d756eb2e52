package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTracesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "traces <node> <path>",
		Short: "List agent-trace ranges for one file at a commit node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			accessor, err := newAccessor(loadConfig())
			if err != nil {
				return err
			}

			ranges, err := accessor.TraceRangesForFile(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if len(ranges) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no trace ranges")
				return nil
			}
			for _, r := range ranges {
				fmt.Fprintf(cmd.OutOrStdout(), "lines %d-%d [%s] %s\n", r.StartLine, r.EndLine, r.SessionID, r.Summary)
			}
			return nil
		},
	}
}
