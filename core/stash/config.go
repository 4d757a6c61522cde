package stash

// Config holds configuration for the Stash GraphQL connection.
type Config struct {
	// URL is the GraphQL endpoint of the Stash server.
	URL string `mapstructure:"url" default:"http://localhost:9999/graphql"`
	// ApiKey is the Stash API key. Empty disables authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxRetries is the number of retries for failed transport calls.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// CacheTTLSeconds is the time-to-live for cached find queries.
	// Zero disables the cache.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"60"`
}
