package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/woozymasta/seqbit/cmd/seqbitctl/root/count"
	"github.com/woozymasta/seqbit/cmd/seqbitctl/root/exist"
	"github.com/woozymasta/seqbit/cmd/seqbitctl/root/list"
	"github.com/woozymasta/seqbit/cmd/seqbitctl/root/synth"
	"github.com/woozymasta/seqbit/internal/config"
)

// NewRootCmd assembles the seqbitctl command tree. cfg supplies the
// defaults (e.g. --capacity) that the list/count/exist subcommands fall
// back to when their flags aren't given explicitly.
func NewRootCmd(cfg config.Config) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "seqbitctl <command> [flags]",
		Short: "Query and generate seqbit compressed bitmap streams",
		Long:  `Decode seqbit compressed streams and run LIST/COUNT/EXIST queries over their AND, or generate synthetic streams for testing.`,
		Example: heredoc.Doc(`
			$ seqbitctl list --stream a.bin
			$ seqbitctl count --stream a.bin --stream b.bin
			$ seqbitctl synth --seed 1 --out a.bin
		`),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(list.NewListCmd(cfg))
	cmd.AddCommand(count.NewCountCmd(cfg))
	cmd.AddCommand(exist.NewExistCmd(cfg))
	cmd.AddCommand(synth.NewSynthCmd())

	return cmd
}
