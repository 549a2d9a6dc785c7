package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thanksgrp/run-length/sequence"
)

// newGroupCommand constructs the `group` command.
func newGroupCommand(a *app) *cobra.Command {
	groupCmd := &cobra.Command{
		Use:   "group [values...]",
		Short: "Group consecutive equal values and report run lengths per value",
		Long: "Group reads values from the arguments, or whitespace separated from stdin, and " +
			"reports for each distinct value the lengths of its runs in order of appearance.",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			values, err := readValues(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			summaries := sequence.Summarize(values)
			a.logger.Debug("grouped values", slog.Int("values", len(values)), slog.Int("distinct", len(summaries)))

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				flag := sequence.SerializeRuns | sequence.SerializeCount | sequence.SerializeLongest | sequence.SerializeMean
				fmt.Fprintf(out, "%s\n", sequence.Serialize(summaries, a.cfg.Precision, flag))
			case "runs":
				for _, s := range summaries {
					fmt.Fprintf(out, "%s: %s\n", s.Value, joinInts(s.Runs))
				}
			case "flat":
				fmt.Fprintln(out, joinInts(sequence.Flatten(sequence.GroupRunLengths(values))))
			default:
				return fmt.Errorf("invalid --format %q; use json|runs|flat", format)
			}
			return nil
		},
	}
	groupCmd.Flags().String("format", "json", "Output format: json|runs|flat")
	return groupCmd
}

func joinInts(x []int) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
