// Command tabfunc integrates and tabulates functions from the command line
// and drives the integration task harness.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
