package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks an admin username/password pair.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// envVerifier checks credentials against the configured admin account.
// The stored password is a bcrypt hash, so comparison cost does not
// leak information about the plaintext.
type envVerifier struct {
	username     string
	passwordHash string
}

func NewEnvVerifier(username, passwordHash string) CredentialVerifier {
	return &envVerifier{username: username, passwordHash: passwordHash}
}

func (v *envVerifier) Verify(username, password string) bool {
	if username != v.username {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password)) == nil
}
