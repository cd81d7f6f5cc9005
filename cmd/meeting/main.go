package main

import (
	"fmt"
	"os"

	"github.com/johnquangdev/meeting-sim/internal/cli"
	"github.com/johnquangdev/meeting-sim/internal/output"
	"github.com/johnquangdev/meeting-sim/pkg/config"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	deps := &cli.Dependencies{
		Config: cfg,
		Logger: logger,
		In:     os.Stdin,
		Out:    os.Stdout,
	}

	return cli.NewRootCmd(deps).Execute()
}
