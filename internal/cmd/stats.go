package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thanksgrp/run-length/stats"
)

// newStatsCommand constructs the `stats` command group and subcommands.
func newStatsCommand(a *app) *cobra.Command {
	statsCmd := &cobra.Command{Use: "stats", Short: "Numeric helpers"}
	statsCmd.AddCommand(
		newStdErrCommand(a),
		newZScoreCommand(a),
		newRescaleCommand(a),
		newMultipleCommand(a),
		newBinomCommand(a),
	)
	return statsCmd
}

func newStdErrCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stderr [values...]",
		Short: "Standard error of the mean (NaN values are skipped unless --keep-nan)",
		RunE: func(cmd *cobra.Command, args []string) error {
			keepNaN, _ := cmd.Flags().GetBool("keep-nan")
			x, err := readFloats(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(stats.StdErr(x, !keepNaN), a.cfg.Precision))
			return nil
		},
	}
	cmd.Flags().Bool("keep-nan", false, "Propagate NaN values instead of skipping them")
	return cmd
}

func newZScoreCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "zscore [values...]",
		Short: "Standard score of each value",
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := readFloats(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloats(stats.ZScore(x), a.cfg.Precision))
			return nil
		},
	}
}

func newRescaleCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rescale [values...]",
		Short: "Min-max rescale values onto [--lo, --hi]",
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, _ := cmd.Flags().GetFloat64("lo")
			hi, _ := cmd.Flags().GetFloat64("hi")
			x, err := readFloats(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			out, err := stats.Rescale(x, lo, hi)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloats(out, a.cfg.Precision))
			return nil
		},
	}
	cmd.Flags().Float64("lo", 0, "Lower bound of the target range")
	cmd.Flags().Float64("hi", 1, "Upper bound of the target range")
	return cmd
}

func newMultipleCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multiple VALUE",
		Short: "Round a value to a multiple of --factor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			factor, _ := cmd.Flags().GetFloat64("factor")
			direction, _ := cmd.Flags().GetString("direction")
			d, err := stats.ParseDirection(direction)
			if err != nil {
				return err
			}
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value: %w", err)
			}
			out, err := stats.ConvertToMultiple(value, factor, d)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(out, a.cfg.Precision))
			return nil
		},
	}
	cmd.Flags().Float64("factor", 1, "Multiple to round to")
	cmd.Flags().String("direction", "nearest", "Rounding direction: nearest|up|down")
	return cmd
}

func newBinomCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "binom",
		Short: "Binomial proportion confidence interval",
		RunE: func(cmd *cobra.Command, _ []string) error {
			successes, _ := cmd.Flags().GetInt("successes")
			trials, _ := cmd.Flags().GetInt("trials")
			level, _ := cmd.Flags().GetFloat64("level")
			method, _ := cmd.Flags().GetString("method")
			m, err := stats.ParseCIMethod(method)
			if err != nil {
				return err
			}
			lo, hi, err := stats.BinomialCI(successes, trials, level, m)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatFloat(lo, a.cfg.Precision), formatFloat(hi, a.cfg.Precision))
			return nil
		},
	}
	cmd.Flags().Int("successes", 0, "Number of successes")
	cmd.Flags().Int("trials", 0, "Number of trials")
	cmd.Flags().Float64("level", 0.95, "Confidence level")
	cmd.Flags().String("method", "wilson", "Interval method: wilson|clopper-pearson")
	return cmd
}
