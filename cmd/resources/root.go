package main

import (
	"fmt"

	"github.com/deppfellow/resource-api/internal/config"
	"github.com/deppfellow/resource-api/internal/logger"
	"github.com/deppfellow/resource-api/internal/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "resources",
		Short: "CRUD API for resources stored in MongoDB",
		Long: `Serves the Resource API. Configuration comes from the environment:
MONGODB holds the connection string, optional settings use the RESOURCES_ prefix
(e.g. RESOURCES_SERVER_PORT). A .env file in the working directory is loaded first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running the binary with no subcommand serves the API.
		RunE: runServe,
	}

	root.AddCommand(newServeCommand(), newSeedCommand())

	return root
}

// bootstrap loads configuration, builds the root logger and connects to
// the database. Every subcommand starts here.
func bootstrap() (*server.Server, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg)

	srv, err := server.New(cfg, &log)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return nil, err
	}

	return srv, nil
}

func closeDatabase(srv *server.Server, log *zerolog.Logger) {
	ctx, cancel := shutdownContext(srv.Config)
	defer cancel()

	if err := srv.DB.Close(ctx); err != nil {
		log.Error().Err(err).Msg("failed to close database connection")
	}
}
