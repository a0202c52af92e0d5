package handler

import (
	"github.com/workcity/project-tracker/internal/core/domain"
	"github.com/workcity/project-tracker/internal/core/ports"
)

type signupRequest struct {
	Name     string `json:"name"     validate:"required"                   msg:"Name is required"`
	Email    string `json:"email"    validate:"required,email"             msg:"Please include a valid email"`
	Password string `json:"password" validate:"required,min=6"             msg:"Password must be 6 or more characters"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin" msg:"Role must be either user or admin"`
}

func (r signupRequest) sanitized() signupRequest {
	return signupRequest{
		Name:     clean(r.Name),
		Email:    normalizeEmail(r.Email),
		Password: r.Password,
		Role:     r.Role,
	}
}

func (r signupRequest) input() ports.SignupInput {
	return ports.SignupInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     domain.Role(r.Role),
	}
}

// loginRequest only requires the password to be present; an empty string is
// left to the credential check.
type loginRequest struct {
	Email    string  `json:"email"    validate:"required,email" msg:"Please include a valid email"`
	Password *string `json:"password" validate:"required"       msg:"Password is required"`
}

func (r loginRequest) sanitized() loginRequest {
	return loginRequest{Email: normalizeEmail(r.Email), Password: r.Password}
}

func (r loginRequest) password() string {
	if r.Password == nil {
		return ""
	}
	return *r.Password
}

type authResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	Data    *domain.User `json:"data"`
}
