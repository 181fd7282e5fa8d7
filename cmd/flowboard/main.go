package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/flowboardhq/flowboard/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	os.Exit(run(ctx))
}

// run builds the CLI and translates its outcome into an exit code.
// The log level starts from FLOWBOARD_DEBUG so long-running serve
// deployments can enable debug output without a flag change; --verbose
// raises it per invocation.
func run(ctx context.Context) int {
	c := cli.New(os.Stderr, cli.LevelFromEnv())
	root := c.RootCommand()

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return nil
	}

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130 // standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
