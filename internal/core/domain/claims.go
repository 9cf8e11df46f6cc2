package domain

import "time"

// Claims is the identity snapshot carried by a session token. Values are
// copied at issuance; later role changes never propagate into an already
// issued token.
type Claims struct {
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}
