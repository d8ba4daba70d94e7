// Package validation provides input validation for the CLI and API
// boundaries: user-supplied file paths and request text sizes.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Limits guarding against resource exhaustion.
const (
	// MaxInputSize is the maximum allowed input text size (64 MB).
	// Conversion runs on a fully read buffer, so unbounded input would
	// be held in memory twice.
	MaxInputSize = 64 << 20
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrInputTooLarge    = errors.New("input too large")
)

// ValidatePath checks that a user-supplied path is plausible before it
// reaches the filesystem: non-empty, bounded length, no null bytes or
// control characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}

	return nil
}

// ValidateInputSize checks that an input buffer is within MaxInputSize.
func ValidateInputSize(n int) error {
	if n > MaxInputSize {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrInputTooLarge, n, MaxInputSize)
	}
	return nil
}
