// Package heaviest finds the launch carrying the most payload mass.
package heaviest

import (
	"context"
	"sync"

	"launchdeck/internal/logger"
	"launchdeck/internal/models"
)

// Catalog is an interface for listing launches in a date range.
type Catalog interface {
	LaunchesInRange(ctx context.Context, r models.DateRange) ([]models.Launch, error)
}

// MassResolver is an interface for summing payload masses.
type MassResolver interface {
	TotalMass(ctx context.Context, payloadIDs []string) (float64, error)
}

// Config holds configuration for the finder.
type Config struct {
	MaxConcurrent int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxConcurrent: 5,
	}
}

// Finder weighs launches and picks the heaviest one in a range.
type Finder struct {
	catalog  Catalog
	resolver MassResolver
	config   Config
}

// New creates a new finder.
func New(catalog Catalog, resolver MassResolver, config Config) *Finder {
	if config.MaxConcurrent <= 0 {
		config = DefaultConfig()
	}
	return &Finder{
		catalog:  catalog,
		resolver: resolver,
		config:   config,
	}
}

// HeaviestLaunch returns the launch in r with the greatest total payload
// mass, or nil when the range holds no launches. When several launches
// share the maximum, the one the catalog listed first wins.
func (f *Finder) HeaviestLaunch(ctx context.Context, r models.DateRange) (*models.WeighedLaunch, error) {
	launches, err := f.catalog.LaunchesInRange(ctx, r)
	if err != nil {
		return nil, err
	}
	if len(launches) == 0 {
		logger.Debug("no launches in range", "range", r.String())
		return nil, nil
	}

	weighed, err := f.WeighAll(ctx, launches)
	if err != nil {
		return nil, err
	}

	best := Heaviest(weighed)

	logger.Debug("heaviest launch found",
		"range", r.String(),
		"launch", best.ID,
		"mass_kg", best.TotalPayloadMassKg)
	return best, nil
}

// Heaviest picks the launch with the greatest total mass. Earlier entries
// win ties. Returns nil for an empty slice.
func Heaviest(weighed []models.WeighedLaunch) *models.WeighedLaunch {
	if len(weighed) == 0 {
		return nil
	}
	best := &weighed[0]
	for i := 1; i < len(weighed); i++ {
		if weighed[i].TotalPayloadMassKg > best.TotalPayloadMassKg {
			best = &weighed[i]
		}
	}
	return best
}

// WeighAll resolves the total payload mass of each launch, preserving
// order. Mass lookups run concurrently, bounded by MaxConcurrent.
func (f *Finder) WeighAll(ctx context.Context, launches []models.Launch) ([]models.WeighedLaunch, error) {
	weighed := make([]models.WeighedLaunch, len(launches))
	errs := make([]error, len(launches))
	sem := make(chan struct{}, f.config.MaxConcurrent)

	var wg sync.WaitGroup
	for i := range launches {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			// Acquire semaphore
			sem <- struct{}{}
			defer func() { <-sem }()

			mass, err := f.resolver.TotalMass(ctx, launches[i].PayloadIDs)
			if err != nil {
				errs[i] = err
				return
			}
			weighed[i] = models.WeighedLaunch{
				Launch:             launches[i],
				TotalPayloadMassKg: mass,
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return weighed, nil
}
