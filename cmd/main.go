package main

import (
	"context"
	"net/http"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/JamesABrownlee/vexo2-5/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config.toml, using defaults", "error", err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		HTTPClient: &http.Client{Timeout: config.API.Timeout()},
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "vexo",
		Usage:    "Operator console for the vexo music bot",
		Version:  "2.5.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
