package models

import "time"

// TokenClaims is what the service reads from a backend bearer token without
// verifying it. It only drives UI affordances; the backend enforces access.
type TokenClaims struct {
	Subject     string    `json:"sub"`
	ExpiresAt   time.Time `json:"expires_at"`
	IsSuperuser bool      `json:"is_superuser"`
}

func (c *TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}
