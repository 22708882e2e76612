package main

import (
	"context"
	"fmt"
	"os"

	"nexttick/internal/api"
	"nexttick/internal/cli"
	"nexttick/internal/config"
)

func main() {
	// Load configuration from defaults and environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create record store based on environment
	factory := NewStoreFactory(GetEnvironment(), cfg)
	store, err := factory.CreateStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating record store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Create context with timeout for the application
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	// Create API instance; the navigation gate reads the session once here
	apiInstance := api.New(ctx, cfg, store)

	// Create the CLI with the injected API
	root := cli.NewRootCommand(apiInstance, cfg)

	if err := root.Command().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
