package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thanksgrp/run-length/internal/archive"
	logpkg "github.com/thanksgrp/run-length/internal/log"
	"github.com/thanksgrp/run-length/sequence"
)

// newArchiveCommand constructs the `archive` command group and subcommands.
func newArchiveCommand(a *app) *cobra.Command {
	archiveCmd := &cobra.Command{Use: "archive", Short: "Persisted sequence operations"}
	archiveCmd.AddCommand(
		newArchivePutCommand(a),
		newArchiveGetCommand(a),
		newArchiveListCommand(a),
		newArchiveDeleteCommand(a),
		newArchiveDumpCommand(a),
	)
	return archiveCmd
}

// withArchive opens the configured archive, runs fn and closes the archive.
func (a *app) withArchive(fn func(archive.Archive) error) error {
	ar, err := archive.Open(a.cfg.Archive, logpkg.Component(a.logger, "archive"))
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer func() { _ = ar.Close() }()
	return fn(ar)
}

func newArchivePutCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "put KEY [values...]",
		Short: "Store values under KEY, replacing or extending the stored sequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, _ := cmd.Flags().GetInt("length")
			appendValues, _ := cmd.Flags().GetBool("append")
			key := args[0]
			values, err := readValues(args[1:], cmd.InOrStdin())
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			return a.withArchive(func(ar archive.Archive) error {
				store := sequence.NewStore[string]()
				if appendValues {
					r, err := ar.Get(ctx, key)
					switch {
					case err == nil:
						if err := store.Restore(map[string]archive.Record{key: r}); err != nil {
							return err
						}
					case !errors.Is(err, archive.ErrNotFound):
						return err
					}
				}
				s, ok := store.Get(key)
				switch {
				case !ok:
					store.New(key, length)
				case length > 0 && s.Length() != length:
					stored := s.All()
					store.Add(key, sequence.NewWithValues(length, stored[max(len(stored)-length, 0):]))
				}
				statements := make([]sequence.Statement[string], len(values))
				for i, v := range values {
					statements[i] = sequence.Statement[string]{Key: key, Value: v, Type: sequence.StatementRoll}
				}
				if err := store.Batch(statements).Err(); err != nil {
					return err
				}
				if err := archive.SaveStore(ctx, ar, store); err != nil {
					return err
				}
				s, _ = store.Get(key)
				a.logger.Info("stored sequence", slog.String("key", key), slog.Int("values", s.Len()), slog.Int("runs", len(s.Runs())))
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d values\n", key, s.Len())
				return nil
			})
		},
	}
	cmd.Flags().Int("length", 0, "Maximum length of the sequence; oldest values are discarded (0 = unbounded)")
	cmd.Flags().Bool("append", false, "Append to the stored sequence instead of replacing it")
	return cmd
}

func newArchiveGetCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the values stored under KEY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, _ := cmd.Flags().GetBool("runs")
			start, _ := cmd.Flags().GetInt("start")
			end, _ := cmd.Flags().GetInt("end")
			return a.withArchive(func(ar archive.Archive) error {
				r, err := ar.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				s, err := sequence.NewFromRecord(r)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if s.Len() == 0 {
					fmt.Fprintln(out)
					return nil
				}
				if end < 0 {
					end = s.Len() - 1
				}
				values, _, err := s.Values(start, end)
				if err != nil {
					return err
				}
				if runs {
					return json.NewEncoder(out).Encode(sequence.GroupRunLengths(values))
				}
				fmt.Fprintln(out, strings.Join(values, " "))
				return nil
			})
		},
	}
	cmd.Flags().Bool("runs", false, "Print run lengths by value instead of the values")
	cmd.Flags().Int("start", 0, "First index to print")
	cmd.Flags().Int("end", -1, "Last index to print (-1 = last value)")
	return cmd
}

func newArchiveListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored keys",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withArchive(func(ar archive.Archive) error {
				keys, err := ar.Keys(cmd.Context())
				if err != nil {
					return err
				}
				for _, k := range keys {
					fmt.Fprintln(cmd.OutOrStdout(), k)
				}
				return nil
			})
		},
	}
}

func newArchiveDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm KEY",
		Aliases: []string{"delete"},
		Short:   "Delete the sequence stored under KEY",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withArchive(func(ar archive.Archive) error {
				return ar.Delete(cmd.Context(), args[0])
			})
		},
	}
}

func newArchiveDumpCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print every stored sequence as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withArchive(func(ar archive.Archive) error {
				store := sequence.NewStore[string]()
				if err := archive.LoadStore(cmd.Context(), ar, store); err != nil {
					return err
				}
				data, err := store.Dump()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			})
		},
	}
}
