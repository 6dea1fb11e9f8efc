package usecase

import "time"

const (
	// AccountCacheTTL bounds staleness of cached account reads; mutations
	// invalidate the key eagerly, the TTL only covers missed invalidations.
	AccountCacheTTL = 5 * time.Minute
)
