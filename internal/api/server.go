// Package api provides the cirko REST API server.
package api

import (
	"fmt"
	"net/http"

	"github.com/cirko-dev/cirko/internal/logging"
	"github.com/cirko-dev/cirko/internal/server"
)

// Start starts the API server with the given configuration. It blocks
// until the listener fails.
func Start(cfg Config) error {
	ServerConfig = cfg

	cache, err := NewCache(cfg.CacheMaxBytes)
	if err != nil {
		return fmt.Errorf("failed to create conversion cache: %w", err)
	}
	convCache = cache

	mux := setupRoutes()

	// Build middleware chain: security headers, CORS, request logging
	var handler http.Handler = server.SecurityHeadersMiddleware(mux)

	handler = server.CORSMiddlewareWithConfig(server.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
	}, handler)
	if len(cfg.AllowedOrigins) > 0 {
		logging.SecurityEvent("cors_configured", "api",
			"mode", "restricted",
			"allowed_origins_count", len(cfg.AllowedOrigins))
	} else {
		logging.SecurityEvent("cors_configured", "api",
			"mode", "permissive",
			"note", "allowing all origins (*) - consider restricting for production")
	}

	handler = logging.CombinedMiddleware(handler)

	logging.ServerStartup("rest_api", "http", cfg.Port,
		"websocket_protocol", "ws")

	addr := fmt.Sprintf(":%d", cfg.Port)
	return http.ListenAndServe(addr, handler)
}

// setupRoutes configures all HTTP routes.
func setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", handleRoot)
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/convert", handleConvert)
	mux.HandleFunc("/ws", handleWebSocket)

	return mux
}
