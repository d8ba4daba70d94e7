package api

// Config holds the API server configuration.
type Config struct {
	Port           int      // TCP port to listen on
	AllowedOrigins []string // CORS origins, empty = allow all
	CacheMaxBytes  int64    // conversion cache budget, 0 = default
}

// ServerConfig is the active server configuration, set by Start.
var ServerConfig Config
