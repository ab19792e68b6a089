// Package constants holds configuration values shared across layers.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Catalog cache providers.
const (
	CacheProviderRedis = "redis"
)

// HeaderCartSession carries the anonymous cart session id in both directions.
const HeaderCartSession = "X-Cart-Session"
