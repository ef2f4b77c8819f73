package uid

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateSessionID generates a random session ID, one per program run
func GenerateSessionID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate session ID: %w", err)
	}
	return id.String(), nil
}
