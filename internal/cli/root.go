package cli

import (
	"os"

	"github.com/arthur-debert/globwalk/internal/version"
	"github.com/arthur-debert/globwalk/pkg/config"
	"github.com/arthur-debert/globwalk/pkg/logging"
	"github.com/arthur-debert/globwalk/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// flagKeys maps command-line flags onto config keys. Only flags the user
// set explicitly override the lower layers.
var flagKeys = []struct {
	flag string
	key  string
}{
	{"case", "match.case_sensitivity"},
	{"parallel", "match.parallelism"},
	{"sort", "match.sort"},
	{"type", "match.type"},
	{"exclude", "match.exclude"},
	{"format", "output.format"},
	{"color", "output.color"},
	{"log-file", "logging.file"},
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		configDir string
	)

	rootCmd := &cobra.Command{
		Use:     "globwalk",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity, false)

			dir := configDir
			if dir == "" {
				if cwd, _ := cmd.Flags().GetString("cwd"); cwd != "" {
					dir = cwd
				} else if wd, err := os.Getwd(); err == nil {
					dir = wd
				}
			}

			dir, err := paths.ExpandHome(dir)
			if err != nil {
				return err
			}
			cfg, err := config.LoadWithFlags(dir, flagValues(cmd))
			if err != nil {
				return err
			}
			if cfg.Logging.File {
				logging.SetupLogger(verbosity, true)
			}
			config.Initialize(cfg)

			log.Debug().Str("command", cmd.Name()).Strs("configFiles", cfg.Files).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory holding .globwalk.toml (default: --cwd or the current directory)")
	rootCmd.PersistentFlags().String("format", "", "Output format: text, json, yaml or toml")
	rootCmd.PersistentFlags().String("color", "", "Color output: auto, always or never")
	rootCmd.PersistentFlags().Bool("log-file", false, "Also write logs to the XDG state directory")

	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if err := initTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// flagValues collects the explicitly set flags as config overrides.
func flagValues(cmd *cobra.Command) map[string]interface{} {
	values := make(map[string]interface{})
	flags := cmd.Flags()
	for _, fk := range flagKeys {
		f := flags.Lookup(fk.flag)
		if f == nil || !f.Changed {
			continue
		}

		var (
			v   interface{}
			err error
		)
		switch f.Value.Type() {
		case "stringSlice":
			v, err = flags.GetStringSlice(fk.flag)
		case "int":
			v, err = flags.GetInt(fk.flag)
		case "bool":
			v, err = flags.GetBool(fk.flag)
		default:
			v = f.Value.String()
		}
		if err != nil {
			continue
		}
		values[fk.key] = v
	}
	return values
}
