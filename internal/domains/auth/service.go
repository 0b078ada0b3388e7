package auth

import (
	"labsite-backend/internal/shared/apperrors"
	"labsite-backend/pkg/jwt"
)

// Service issues session tokens for valid admin credentials.
type Service interface {
	Login(req *LoginRequest) (*LoginResponse, error)
}

type authService struct {
	verifier CredentialVerifier
	tokens   *jwt.Manager
}

func NewAuthService(verifier CredentialVerifier, tokens *jwt.Manager) Service {
	return &authService{verifier: verifier, tokens: tokens}
}

func (s *authService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := apperrors.FromValidation(req.Validate()); err != nil {
		return nil, err
	}

	if !s.verifier.Verify(req.Username, req.Password) {
		return nil, apperrors.NewUnauthorized("Invalid username or password")
	}

	token, err := s.tokens.GenerateToken(req.Username)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	return &LoginResponse{Token: token, Username: req.Username}, nil
}
