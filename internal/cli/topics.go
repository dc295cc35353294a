package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/globwalk/pkg/cobrax/topics"
	"github.com/arthur-debert/globwalk/pkg/output"
	"github.com/spf13/cobra"
)

//go:embed help/*.md
var helpFiles embed.FS

func initTopics(rootCmd *cobra.Command) error {
	sub, err := fs.Sub(helpFiles, "help")
	if err != nil {
		return err
	}
	renderer := topics.NewGlamourRenderer()
	if !output.ColorEnabled("auto", os.Stdout) {
		renderer.Style = "notty"
	}
	_, err = topics.InitializeWithOptions(rootCmd, sub, topics.Options{
		Extensions: []string{".md"},
		Renderer:   renderer,
	})
	return err
}
