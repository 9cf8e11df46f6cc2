package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lunchbox/catering-api/internal/core/domain"
)

// DefaultTokenTTL is the session validity window: expiry is always issuance
// plus this duration.
const DefaultTokenTTL = 7 * 24 * time.Hour

// ErrMissingSecret is returned by NewJWTTokenService when no signing secret
// is configured. The service fails closed: it will not sign or verify with
// an empty key.
var ErrMissingSecret = errors.New("jwt secret is not configured")

type sessionClaims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenService issues and verifies HS256-signed session tokens. The
// secret and TTL are fixed at construction and read-only afterwards, so the
// service is safe for concurrent use without locking.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokenService(secret string, ttl time.Duration) (*JWTTokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token carrying the user's identity and role as of now.
func (s *JWTTokenService) Issue(userID int64, email, role string) (string, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// A good signature past its expiry yields domain.ErrTokenExpired; any other
// failure, including an unexpected signing algorithm, yields
// domain.ErrInvalidToken.
func (s *JWTTokenService) Verify(token string) (*domain.Claims, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	out := &domain.Claims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
