package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/globwalk/pkg/config"
	"github.com/arthur-debert/globwalk/pkg/errors"
	"github.com/arthur-debert/globwalk/pkg/paths"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			out := cmd.OutOrStdout()
			for _, f := range cfg.Files {
				fmt.Fprintf(out, "# loaded from %s\n", f)
			}
			rendered, err := cfg.TOML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgConfigInitShort,
		Long:    MsgConfigInitLong,
		Example: MsgConfigInitExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			dir, _ := cmd.Flags().GetString("config-dir")
			if dir == "" {
				dir = "."
			}
			dir, err := paths.ExpandHome(dir)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, config.ProjectFiles[0])
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrInvalidInput, MsgConfigExist, path).WithDetail("path", path)
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrOutput, "failed to write %s", path)
			}
			cmd.PrintErrf("Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write config to .globwalk.toml instead of stdout")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}
