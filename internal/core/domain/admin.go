package domain

import "time"

// AdminAccount models a dashboard administrator. Accounts are provisioned
// out-of-band (adminctl); the API only reads them during login.
type AdminAccount struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminClaims is the verified payload of an admin session token.
type AdminClaims struct {
	Username  string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
