package uid

import "github.com/google/uuid"

// GenerateRoundID returns a random ID for one round of play
func GenerateRoundID() string {
	return uuid.NewString()
}
