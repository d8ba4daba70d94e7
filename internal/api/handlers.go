package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cirko-dev/cirko/core/translit"
	"github.com/cirko-dev/cirko/internal/validation"
)

const version = "0.1.0"

// Conversion directions accepted by the API.
const (
	DirectionLatin    = "latin"
	DirectionCyrillic = "cyrillic"
)

// APIResponse is the standard API response wrapper.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIMeta contains response metadata.
type APIMeta struct {
	Timestamp string `json:"timestamp"`
}

// ConvertRequest is the request body for conversion.
type ConvertRequest struct {
	Text      string `json:"text"`
	Direction string `json:"direction,omitempty"` // "latin", "cyrillic" or empty for auto-detect
}

// ConvertResult is the result of a conversion.
type ConvertResult struct {
	Text      string `json:"text"`
	Direction string `json:"direction"` // direction actually applied
	Cached    bool   `json:"cached"`
}

// HealthInfo is the health check response.
type HealthInfo struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

var startTime = time.Now()

// convCache memoizes conversions; nil disables caching.
var convCache *Cache

func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Endpoint not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"name":      "Cirko API",
		"version":   version,
		"endpoints": []string{"/health", "/convert", "/ws"},
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthInfo{
		Status:  "ok",
		Version: version,
		Uptime:  time.Since(startTime).Round(time.Second).String(),
	})
}

func handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Use POST")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, validation.MaxInputSize)

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON")
		return
	}

	if err := validation.ValidateInputSize(len(req.Text)); err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "TEXT_TOO_LARGE", err.Error())
		return
	}

	switch req.Direction {
	case "", DirectionLatin, DirectionCyrillic:
	default:
		respondError(w, http.StatusBadRequest, "INVALID_DIRECTION",
			"Direction must be \"latin\", \"cyrillic\" or omitted for auto-detection")
		return
	}

	result, direction, cached := convertText(req.Text, req.Direction)
	respondJSON(w, http.StatusOK, ConvertResult{
		Text:      result,
		Direction: direction,
		Cached:    cached,
	})
}

// convertText applies the requested conversion, resolving the direction
// by script detection when none is given, and consulting the cache.
func convertText(text, direction string) (result, resolved string, cached bool) {
	resolved = direction
	if resolved == "" {
		if translit.ContainsCyrillic(text) {
			resolved = DirectionLatin
		} else {
			resolved = DirectionCyrillic
		}
	}

	if convCache != nil {
		if hit, ok := convCache.Get(resolved, text); ok {
			return hit, resolved, true
		}
	}

	if resolved == DirectionLatin {
		result = translit.ToLatin(text)
	} else {
		result = translit.ToCyrillic(text)
	}

	if convCache != nil {
		convCache.Put(resolved, text, result)
	}
	return result, resolved, false
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	response := APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}
