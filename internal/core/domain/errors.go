package domain

import "errors"

var (
	// ErrUserExists is returned when registration targets an email that is
	// already taken, whether detected by the pre-insert lookup or by the
	// store's uniqueness constraint firing on a concurrent insert.
	ErrUserExists = errors.New("user with this email already exists")

	// ErrInvalidCredentials covers every login failure. Unknown email,
	// missing hash and wrong password all map here so a caller cannot
	// probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is a store-level miss. The auth flows translate it
	// before it reaches a client.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserCreateFailed means the store accepted the insert but returned
	// no row for the new account.
	ErrUserCreateFailed = errors.New("could not create user")

	// ErrMissingFields is returned when a required registration or login
	// field is empty.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidToken covers malformed tokens, signature mismatches and
	// unexpected signing algorithms.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired means the signature verified but the token is past
	// its expiry. Distinct from ErrInvalidToken so a client can prompt
	// re-login, but both deny access.
	ErrTokenExpired = errors.New("token expired")
)
