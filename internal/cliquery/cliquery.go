// Package cliquery holds the flag-parsing and execution logic shared by
// seqbitctl's list/count/exist subcommands, so each subcommand package
// stays a thin cobra.Command wrapper around one Run call.
package cliquery

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/woozymasta/seqbit"
	"github.com/woozymasta/seqbit/internal/config"
)

// AddFlags registers the flags every query subcommand shares: one or more
// compressed stream files to AND together, and the declared result
// capacity. --capacity defaults to cfg.DefaultCapacity, so a loaded
// $HOME/.seqbitctl.yaml (or --config file) actually changes subcommand
// behavior rather than just gating whether main.go can parse it.
func AddFlags(cmd *cobra.Command, cfg config.Config) {
	cmd.Flags().StringArrayP("stream", "s", nil, "path to a compressed stream file (repeat to AND multiple streams)")
	cmd.Flags().Uint32P("capacity", "c", cfg.DefaultCapacity, "declared result capacity (LIST allocation bound; ignored by count and exist)")
	cmd.MarkFlagRequired("stream")
}

// Run loads the files named by --stream, runs a query in mode, and writes
// the result to cmd's stdout. It logs the invocation under a fresh request
// ID for correlating a run across multiple log lines.
func Run(cmd *cobra.Command, mode seqbit.Mode) error {
	paths, err := cmd.Flags().GetStringArray("stream")
	if err != nil {
		return err
	}
	capacity, err := cmd.Flags().GetUint32("capacity")
	if err != nil {
		return err
	}

	reqID := uuid.New()
	logger := log.With("request_id", reqID.String(), "mode", modeName(mode), "streams", len(paths))
	logger.Debug("starting query", "capacity", capacity)

	bufs := make([][]byte, len(paths))
	for i, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			logger.Error("failed to read stream file", "path", p, "error", err)
			return fmt.Errorf("read %s: %w", p, err)
		}
		bufs[i] = b
	}

	var result seqbit.Result
	switch len(bufs) {
	case 0:
		return fmt.Errorf("at least one --stream is required")
	case 1:
		result, err = seqbit.QueryOne(bufs[0], capacity, mode)
	default:
		result, err = seqbit.QueryAnd(bufs, capacity, mode)
	}
	if err != nil {
		logger.Error("query failed", "error", err)
		return err
	}

	printResult(cmd, mode, result)
	logger.Debug("query finished")
	return nil
}

func printResult(cmd *cobra.Command, mode seqbit.Mode, result seqbit.Result) {
	out := cmd.OutOrStdout()
	switch mode {
	case seqbit.ModeList:
		for _, idx := range result.List {
			fmt.Fprintln(out, idx)
		}
	case seqbit.ModeCount:
		fmt.Fprintln(out, result.Count)
	case seqbit.ModeExist:
		fmt.Fprintln(out, result.Exist)
	}
}

func modeName(mode seqbit.Mode) string {
	switch mode {
	case seqbit.ModeList:
		return "list"
	case seqbit.ModeCount:
		return "count"
	case seqbit.ModeExist:
		return "exist"
	default:
		return "unknown"
	}
}
