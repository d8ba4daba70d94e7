// Package server provides shared utilities for HTTP servers.
package server

import (
	"net/http"
	"path/filepath"
)

// AbsPath returns the absolute path of a file, or the original path if it fails.
func AbsPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// CORSConfig holds CORS middleware configuration.
type CORSConfig struct {
	AllowedOrigins []string // List of allowed origins, empty = allow all (*)
}

// CORSMiddlewareWithConfig adds CORS headers to responses with configurable origins.
// If AllowedOrigins is empty, it defaults to "*" (allow all origins).
// If AllowedOrigins contains specific origins, it validates the request Origin header.
func CORSMiddlewareWithConfig(cfg CORSConfig, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		allowedOrigin := "*"
		if len(cfg.AllowedOrigins) > 0 {
			allowed := false
			for _, allowedOrig := range cfg.AllowedOrigins {
				if origin == allowedOrig {
					allowed = true
					allowedOrigin = origin
					break
				}
			}
			if !allowed {
				// Origin not in allowed list - don't set CORS headers,
				// the browser will block the response
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				next.ServeHTTP(w, r)
				return
			}
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		// Only set Allow-Credentials if origin is not "*"
		if allowedOrigin != "*" {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SecurityHeadersMiddleware adds security headers to all responses.
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
