package ports

import "github.com/lunchbox/catering-api/internal/core/domain"

// TokenService issues and verifies signed session tokens. Verify fails with
// domain.ErrTokenExpired when the signature is good but the token is past
// expiry, and domain.ErrInvalidToken for every other failure.
type TokenService interface {
	Issue(userID int64, email, role string) (string, error)
	Verify(token string) (*domain.Claims, error)
}
