// Package catalog lists launches held by the remote catalog service.
package catalog

import (
	"context"
	"iter"

	"launchdeck/internal/logger"
	"launchdeck/internal/models"
)

// Gateway is an interface for streaming launches from the remote service.
type Gateway interface {
	Launches(ctx context.Context, r models.DateRange) iter.Seq2[models.Launch, error]
}

// Service answers launch listing questions against a remote gateway.
type Service struct {
	gateway Gateway
}

// New creates a new catalog service.
func New(gateway Gateway) *Service {
	return &Service{gateway: gateway}
}

// LaunchesInRange returns every launch whose launch time falls inside r,
// in the order the remote service yields them. The result is never nil.
func (s *Service) LaunchesInRange(ctx context.Context, r models.DateRange) ([]models.Launch, error) {
	launches := []models.Launch{}
	for launch, err := range s.gateway.Launches(ctx, r) {
		if err != nil {
			return nil, err
		}
		launches = append(launches, launch)
	}

	logger.Debug("listed launches", "range", r.String(), "count", len(launches))
	return launches, nil
}
