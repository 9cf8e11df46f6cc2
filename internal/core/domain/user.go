package domain

import "time"

const (
	RoleParent  = "parent"
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// DefaultRole is assigned to every self-registered account. Promoting an
// account to admin or cashier happens through administrative tooling, not
// through registration.
const DefaultRole = RoleParent

// User models an account in the catering system. PasswordHash is excluded
// from JSON so it can never appear in an API response.
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
