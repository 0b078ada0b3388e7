package auth

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LoginRequest is the admin credential payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
