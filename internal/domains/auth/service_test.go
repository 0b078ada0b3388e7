package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"labsite-backend/internal/shared/apperrors"
	"labsite-backend/pkg/jwt"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	verifier := NewEnvVerifier("admin", string(hash))
	tokens := jwt.NewManager("test-secret", time.Hour)
	return NewAuthService(verifier, tokens)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Login(&LoginRequest{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, "admin", result.Username)

	claims, err := jwt.NewManager("test-secret", time.Hour).VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(&LoginRequest{Username: "admin", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestLoginRejectsUnknownUsername(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(&LoginRequest{Username: "root", Password: "correct-horse"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestLoginRejectsMissingFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(&LoginRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationFailed(err))
	assert.Contains(t, apperrors.GetViolations(err), "password: password is required")
	assert.Contains(t, apperrors.GetViolations(err), "username: username is required")
}
