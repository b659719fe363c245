// Package masses resolves payload identifiers to their combined mass.
package masses

import (
	"context"

	"launchdeck/internal/logger"
)

// Source is an interface for fetching known payload masses by id.
type Source interface {
	FetchPayloadMasses(ctx context.Context, ids []string) (map[string]float64, error)
}

// Resolver sums payload masses fetched from a remote source.
type Resolver struct {
	source Source
}

// New creates a new mass resolver.
func New(source Source) *Resolver {
	return &Resolver{source: source}
}

// TotalMass returns the combined mass in kilograms of the given payloads.
// Duplicate ids count once. Payloads the remote service does not know a
// mass for contribute zero. An empty id set costs no remote call.
func (r *Resolver) TotalMass(ctx context.Context, payloadIDs []string) (float64, error) {
	unique := dedupe(payloadIDs)
	if len(unique) == 0 {
		return 0, nil
	}

	known, err := r.source.FetchPayloadMasses(ctx, unique)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, id := range unique {
		mass, ok := known[id]
		if !ok {
			logger.Debug("payload mass unknown", "payload", id)
			continue
		}
		total += mass
	}

	return total, nil
}

// dedupe returns the ids with duplicates removed, first occurrence order kept.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
