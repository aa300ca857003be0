package utils

import "time"

// FacilityListCacheKey is the Redis key for the public facility listing.
const FacilityListCacheKey = "facilities:approved"

// FacilityListCacheTTL is the time-to-live for the cached facility listing.
const FacilityListCacheTTL = 5 * time.Minute
