package main

import (
	"github.com/deppfellow/resource-api/internal/lib/utils"
	"github.com/deppfellow/resource-api/internal/repository"
	"github.com/deppfellow/resource-api/internal/seed"
	"github.com/deppfellow/resource-api/internal/service"
	"github.com/spf13/cobra"
)

type seedOptions struct {
	file      string
	keep      bool
	printJSON bool
}

func newSeedCommand() *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load resources from a YAML file into the database",
		Long: `Reads a YAML seed file, validates every entry with the same rules as
POST /api/resources and inserts them. Existing resources are deleted first
unless --keep is given. Nothing is written if any entry is invalid.

Example:
  resources seed --file seed.yaml
  resources seed --file extra.yaml --keep`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "seed.yaml", "seed file to load")
	cmd.Flags().BoolVar(&opts.keep, "keep", false, "keep existing resources instead of deleting them")
	cmd.Flags().BoolVar(&opts.printJSON, "print", false, "print the inserted resources as JSON")

	return cmd
}

func runSeed(cmd *cobra.Command, opts *seedOptions) error {
	resources, err := seed.Load(opts.file)
	if err != nil {
		return err
	}

	srv, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDatabase(srv, srv.Logger)

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)

	created, err := services.Seed.Seed(cmd.Context(), resources, opts.keep)
	if err != nil {
		return err
	}

	if opts.printJSON {
		return utils.WriteJSON(cmd.OutOrStdout(), created)
	}
	return nil
}
