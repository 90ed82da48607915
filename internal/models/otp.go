package models

import (
	"time"
)

// OTPChallenge is the ephemeral state held between sending a verification
// code and the matching verify attempt. It lives in a ChallengeStore keyed by
// username and is consumed on the first verify attempt, success or failure.
type OTPChallenge struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
