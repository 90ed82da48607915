package models

import (
	"time"
)

// AuthToken is an opaque bearer credential bound to a user. Login reuses an
// existing token for the user rather than minting a duplicate.
type AuthToken struct {
	Key       string
	Username  string
	CreatedAt time.Time
}
