// SPDX-License-Identifier: MIT

// Command xychain converts chain-graph grids to event logs and back, and
// verifies directories of YAML fixtures.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
