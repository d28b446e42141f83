package synth

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/woozymasta/seqbit/internal/genseq"
)

// NewSynthCmd returns the `seqbitctl synth` command, which writes a
// synthetic compressed seqbit stream to a file for use as fixture data
// against the list/count/exist commands.
func NewSynthCmd() *cobra.Command {
	var (
		seed         int64
		runCount     int
		maxRunLength uint
		level        int
		out          string
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Generate a synthetic compressed stream with controllable run structure",
		Example: heredoc.Doc(`
			$ seqbitctl synth --seed 1 --out a.bin
			$ seqbitctl synth --seed 2 --run-count 500 --max-run-length 4000 --out b.bin
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return fmt.Errorf("--out is required")
			}

			reqID := uuid.New()
			logger := log.With("request_id", reqID.String(), "seed", seed)
			logger.Debug("generating synthetic stream", "run_count", runCount, "max_run_length", maxRunLength, "level", level)

			spec := genseq.Spec{
				Seed:         seed,
				RunCount:     runCount,
				MaxRunLength: maxRunLength,
				Shape:        genseq.DefaultRunShape(),
				EncodeLevel:  level,
			}
			compressed, raw := genseq.Generate(spec)

			if err := os.WriteFile(out, compressed, 0o644); err != nil {
				logger.Error("failed to write output file", "path", out, "error", err)
				return fmt.Errorf("write %s: %w", out, err)
			}

			logger.Debug("synthetic stream written", "raw_bytes", len(raw), "compressed_bytes", len(compressed))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "deterministic PRNG seed")
	cmd.Flags().IntVar(&runCount, "run-count", 64, "number of runs to generate")
	cmd.Flags().UintVar(&maxRunLength, "max-run-length", 200, "maximum length of any single run")
	cmd.Flags().IntVar(&level, "level", 9, "reference encoder level (0-9)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file path (required)")
	cmd.MarkFlagRequired("out")

	return cmd
}
