package service

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor. 10 rounds keeps a single hash in the
// tens of milliseconds on current hardware, slow enough to blunt offline
// brute force without stalling interactive login.
const hashCost = 10

// BcryptHasher hashes passwords with bcrypt. Each hash embeds its own
// random salt, so hashing the same password twice yields different strings.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: hashCost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify recomputes the hash using the salt embedded in hash and compares in
// constant time. Malformed hashes report false, never an error.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
