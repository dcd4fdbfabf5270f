// Package repository handles all interactions with the database.
//
// It owns the MongoDB filters and driver calls, so the service layer
// only ever sees model types and plain errors. Not-found conditions are
// reported as mongo.ErrNoDocuments, whatever the driver call was.
package repository

import (
	"github.com/deppfellow/resource-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Resources *ResourceRepository
}

// NewRepositories constructs the repository container from the shared
// database handle on s.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Resources: NewResourceRepository(s.DB.Resources()),
	}
}
