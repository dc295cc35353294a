package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/globwalk/pkg/config"
	"github.com/arthur-debert/globwalk/pkg/errors"
	"github.com/arthur-debert/globwalk/pkg/filesystem"
	"github.com/arthur-debert/globwalk/pkg/glob"
	"github.com/arthur-debert/globwalk/pkg/logging"
	"github.com/arthur-debert/globwalk/pkg/output"
	"github.com/arthur-debert/globwalk/pkg/paths"
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	var (
		cwd          string
		requireMatch bool
		showStats    bool
	)

	cmd := &cobra.Command{
		Use:     "match <pattern>...",
		Short:   MsgMatchShort,
		Long:    MsgMatchLong,
		Example: MsgMatchExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.match")
			cfg := config.Get()

			opts, err := cfg.GlobOptions()
			if err != nil {
				return err
			}
			if cwd != "" {
				expanded, err := paths.ExpandHome(cwd)
				if err != nil {
					return err
				}
				abs, err := filepath.Abs(expanded)
				if err != nil {
					return errors.Wrapf(err, errors.ErrWorkingDirectory, "invalid --cwd %q", cwd)
				}
				opts = append(opts, glob.WithWorkingDirectory(paths.Normalize(abs)))
			}

			patterns := make([]*glob.Pattern, 0, len(args))
			for _, arg := range args {
				p, err := glob.Parse(arg)
				if err != nil {
					return err
				}
				patterns = append(patterns, p)
			}

			res, err := glob.MatchAll(cmd.Context(), patterns, filesystem.NewOS(), opts...)
			if err != nil {
				return err
			}

			stats := res.Stats()
			logger.Info().
				Strs("patterns", args).
				Int("matches", res.Len()).
				Int("directoriesListed", stats.DirectoriesListed).
				Int("branchesDropped", stats.BranchesDropped).
				Msg("Match completed")

			format, err := output.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}
			matches := res.Matches()
			if cfg.Match.Sort {
				matches = res.Sorted()
			}

			out := cmd.OutOrStdout()
			if err := output.RenderMatches(out, matches, format, colorFor(cfg, out)); err != nil {
				return err
			}
			if showStats {
				cmd.PrintErrf("states=%d listed=%d statted=%d dropped=%d\n",
					stats.States, stats.DirectoriesListed, stats.PathsStatted, stats.BranchesDropped)
			}

			if requireMatch && res.IsEmpty() {
				return errors.New(errors.ErrNoMatch, MsgNoMatch).WithDetail("patterns", args)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cwd, "cwd", "", "Directory relative patterns are resolved against")
	cmd.Flags().String("case", "", "Name comparison: auto, sensitive or insensitive")
	cmd.Flags().String("type", "", "Report all, files or directories")
	cmd.Flags().Bool("sort", true, "Print matches in lexicographic order")
	cmd.Flags().Int("parallel", 1, "Number of goroutines walking the tree")
	cmd.Flags().StringSlice("exclude", nil, "Directory names (or name patterns) not to descend into")
	cmd.Flags().BoolVar(&requireMatch, "require-match", false, "Exit with an error when nothing matches")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Print traversal counters to stderr")

	return cmd
}

func colorFor(cfg *config.Config, w io.Writer) bool {
	f, _ := w.(*os.File)
	return output.ColorEnabled(cfg.Output.Color, f)
}
