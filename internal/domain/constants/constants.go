// Package constants holds shared domain-level constants.
package constants

// Provider names for the broadcast fabric and presence store.
const (
	ProviderMemory = "memory"
	ProviderRedis  = "redis"
)
