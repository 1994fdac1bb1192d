package utils

import "github.com/google/uuid"

// NewID returns an opaque unique identifier for a new document.
func NewID() string {
	return uuid.NewString()
}
