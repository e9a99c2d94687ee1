package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"mockcheck/internal/cli/commands"
	"mockcheck/internal/config"
	"mockcheck/internal/exitcodes"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	if err := config.LoadEnvFile(config.DefaultEnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitcodes.Failure
	}

	// Create config from defaults and MOCKCHECK_* environment
	cfg, err := config.Load(config.Flags{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitcodes.Failure
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := commands.NewRootCommand(version, cfg)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *exitcodes.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
			}
			return exitErr.Code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitcodes.Failure
	}
	return exitcodes.Success
}
