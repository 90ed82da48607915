// Package otp generates fixed-length numeric one-time passwords.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const DefaultLength = 6

var ten = big.NewInt(10)

// Generate returns a string of length decimal digits, each drawn
// independently and uniformly from a cryptographic source.
func Generate(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("otp length must be at least 1 (got %d)", length)
	}

	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate otp digit: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}

	return string(code), nil
}
