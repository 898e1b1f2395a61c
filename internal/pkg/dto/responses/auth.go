package responses

import "time"

type LoginUser struct {
	Token       string    `json:"token"`
	IsSuperuser bool      `json:"is_superuser"`
	ExpiresAt   time.Time `json:"expires_at,omitempty"`
}

type CurrentUser struct {
	Subject     string    `json:"subject"`
	IsSuperuser bool      `json:"is_superuser"`
	ExpiresAt   time.Time `json:"expires_at,omitempty"`
}
