package list

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/woozymasta/seqbit"
	"github.com/woozymasta/seqbit/internal/cliquery"
	"github.com/woozymasta/seqbit/internal/config"
)

// NewListCmd returns the `seqbitctl list` command.
func NewListCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the set-bit indices of one or more AND'd streams",
		Long:  `Decode one or more compressed streams, AND them together, and print every set-bit index in ascending order.`,
		Example: heredoc.Doc(`
			$ seqbitctl list --stream a.bin
			$ seqbitctl list --stream a.bin --stream b.bin --capacity 1000000
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliquery.Run(cmd, seqbit.ModeList)
		},
	}
	cliquery.AddFlags(cmd, cfg)
	return cmd
}
