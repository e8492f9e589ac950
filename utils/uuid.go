package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// GenerateRequestID returns a time-ordered identifier for request correlation,
// falling back to a random one if the clock sequence cannot be read
func GenerateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return GenerateID()
	}
	return id.String()
}
