package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/deppfellow/resource-api/internal/config"
	"github.com/deppfellow/resource-api/internal/database"
	"github.com/deppfellow/resource-api/internal/handler"
	"github.com/deppfellow/resource-api/internal/repository"
	"github.com/deppfellow/resource-api/internal/router"
	"github.com/deppfellow/resource-api/internal/service"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func shutdownContext(cfg *config.Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := bootstrap()
	if err != nil {
		return err
	}
	log := srv.Logger

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.EnsureIndexes(ctx, log, srv.DB.Resources()); err != nil {
		closeDatabase(srv, log)
		return err
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)

	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case err := <-serverErr:
		closeDatabase(srv, log)
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := shutdownContext(srv.Config)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}
