package ports

// PasswordHasher produces and checks salted one-way password hashes.
// Verify returns false for a malformed hash rather than an error, so the
// caller cannot tell a corrupt record from a wrong password.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
