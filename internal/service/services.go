package service

import (
	"github.com/deppfellow/resource-api/internal/repository"
	"github.com/deppfellow/resource-api/internal/server"
)

// Services groups every service so the router gets a single value.
type Services struct {
	Resources *ResourceService
	Seed      *SeedService
}

// NewServices wires services to their repositories.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Resources: NewResourceService(repos.Resources),
		Seed:      NewSeedService(s.Logger, repos.Resources),
	}
}
