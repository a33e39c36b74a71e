package utils

// AvailabilityCachePrefix prefixes per-garage cached free-hour lists.
const AvailabilityCachePrefix = "availability:"

// AvailabilityCacheKey builds the cache key for a garage's free hours.
func AvailabilityCacheKey(garageID string) string {
	return AvailabilityCachePrefix + garageID
}
