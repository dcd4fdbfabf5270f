// Command resources runs the Resource API and its maintenance tasks.
package main

import (
	"os"

	"github.com/deppfellow/resource-api/internal/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log := logger.NewBootstrap()
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
