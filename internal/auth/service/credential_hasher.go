package service

import (
	"golang.org/x/crypto/bcrypt"
)

// CredentialHasher produces salted one-way hashes for short secrets (one-time
// codes, passwords). Each Hash call embeds a fresh salt, so identical inputs
// yield different stored representations.
type CredentialHasher struct {
	cost int
}

func NewCredentialHasher() *CredentialHasher {
	return &CredentialHasher{cost: bcrypt.DefaultCost}
}

func (h *CredentialHasher) Hash(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Matches reports whether raw corresponds to hash. A malformed hash is
// reported as a mismatch, never as an error.
func (h *CredentialHasher) Matches(raw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
