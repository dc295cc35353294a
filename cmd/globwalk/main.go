package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/globwalk/internal/cli"
	"github.com/arthur-debert/globwalk/pkg/errors"
	"github.com/arthur-debert/globwalk/pkg/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(report(err))
	}
}

// report prints err and returns the exit code: 1 when nothing matched,
// 2 for every other failure.
func report(err error) int {
	if errors.IsErrorCode(err, errors.ErrNoMatch) {
		return 1
	}
	styles := output.NewStyles(os.Stderr, output.ColorEnabled("auto", os.Stderr))
	fmt.Fprintln(os.Stderr, styles.Error.Render(fmt.Sprintf("Error: %v", err)))
	return 2
}
