package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

const (
	gameIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	gameIDLength   = 6
)

// GenerateGameID - short human-shareable game code.
func GenerateGameID() (string, error) {
	code := make([]byte, gameIDLength)
	for i := range code {
		index, err := rand.Int(rand.Reader, big.NewInt(int64(len(gameIDAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate game id: %w", err)
		}
		code[i] = gameIDAlphabet[index.Int64()]
	}

	return string(code), nil
}

// GenerateNewSessionID - opaque player session identifier.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
