package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ritual/internal/cli"
	"ritual/internal/config"
)

func main() {
	// Create repository factory based on environment
	factory := NewRepositoryFactory(getEnvironment())

	root := cli.NewRootCommand(config.NewLoader(), factory.APIFactory())

	// Interrupts cancel the running command; serve shuts down gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
