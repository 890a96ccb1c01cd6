package control

import (
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultIDLength is the length of layer and style ids.
	DefaultIDLength = 12
	// WidgetIDLength is the length of widget ids.
	WidgetIDLength = 18
)

// IDGenerator returns a random identifier of n characters.
type IDGenerator func(n int) string

// RandomID returns the first n hex digits of a random UUID. n is capped at
// 32.
func RandomID(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n < len(s) {
		s = s[:n]
	}
	return s
}

// NewWidgetID returns a fresh widget id.
func NewWidgetID() string { return RandomID(WidgetIDLength) }

// RandomFileName returns n URL-safe characters derived from a random UUID,
// suitable as a file name stem. n is capped at 22.
func RandomFileName(n int) string {
	id := uuid.New()
	s := base64.RawURLEncoding.EncodeToString(id[:])
	if n < len(s) {
		s = s[:n]
	}
	return s
}
