package count

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/woozymasta/seqbit"
	"github.com/woozymasta/seqbit/internal/cliquery"
	"github.com/woozymasta/seqbit/internal/config"
)

// NewCountCmd returns the `seqbitctl count` command.
func NewCountCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the number of set bits across one or more AND'd streams",
		Example: heredoc.Doc(`
			$ seqbitctl count --stream a.bin --stream b.bin
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliquery.Run(cmd, seqbit.ModeCount)
		},
	}
	cliquery.AddFlags(cmd, cfg)
	return cmd
}
