package cli

import (
	"github.com/arthur-debert/globwalk/pkg/config"
	"github.com/arthur-debert/globwalk/pkg/glob"
	"github.com/arthur-debert/globwalk/pkg/output"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "parse <pattern>",
		Short:   MsgParseShort,
		Long:    MsgParseLong,
		Example: MsgParseExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			p, err := glob.Parse(args[0])
			if err != nil {
				return err
			}
			format, err := output.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return output.RenderPattern(out, p, format, colorFor(cfg, out))
		},
	}
}
