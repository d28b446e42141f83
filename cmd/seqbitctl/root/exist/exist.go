package exist

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/woozymasta/seqbit"
	"github.com/woozymasta/seqbit/internal/cliquery"
	"github.com/woozymasta/seqbit/internal/config"
)

// NewExistCmd returns the `seqbitctl exist` command.
func NewExistCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exist",
		Short: "Report whether any bit is set across one or more AND'd streams",
		Example: heredoc.Doc(`
			$ seqbitctl exist --stream a.bin --stream b.bin
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliquery.Run(cmd, seqbit.ModeExist)
		},
	}
	cliquery.AddFlags(cmd, cfg)
	return cmd
}
