package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pet-adoption/internal/cli"
)

// Se setean con -ldflags "-X main.version=..."
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersionInfo(version, commit, buildTime)
	if err := cli.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
