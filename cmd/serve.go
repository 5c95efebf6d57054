package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/JamesABrownlee/vexo2-5/internal/repositories"
	"github.com/JamesABrownlee/vexo2-5/internal/server"
)

// Serve runs the dashboard API until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	serverCfg := r.config.Server
	if host := cmd.String("host"); host != "" {
		serverCfg.Host = host
	}
	if port := cmd.Int("port"); port != 0 {
		serverCfg.Port = port
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	registry := server.NewRegistry(server.DefaultDefinitions())
	handlers := server.NewHandlers(registry, repositories.NewLibraryRepository(db), r.logger)

	router := server.NewRouter()
	router.Use(server.RequestID(), server.RequestLogger(r.logger))
	handlers.Register(router, serverCfg.AdminToken)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(serverCfg.Addr(), router, r.logger)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
