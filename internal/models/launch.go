package models

import "time"

// Launch is a single mission record from the remote catalog. It is
// immutable once built from a remote document; mass aggregation produces
// a WeighedLaunch instead of mutating the Launch.
type Launch struct {
	ID         string
	LaunchTime time.Time // UTC
	PayloadIDs []string  // service ordering preserved, may be empty
}

// WeighedLaunch is a Launch enriched with its total payload mass. Payload
// masses unknown at the source count as zero, so the total is always
// non-negative but may understate reality.
type WeighedLaunch struct {
	Launch
	TotalPayloadMassKg float64
}
