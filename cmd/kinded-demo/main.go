// Package main prints a few union and constructor-union values before and
// after mapping them.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/authcorp/kinded/internal/config"
	"github.com/authcorp/kinded/internal/demo"
	"github.com/authcorp/kinded/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kinded-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.Logging, os.Stderr)
	return demo.Run(context.Background(), os.Stdout, cfg.Demo, logger)
}
