package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginCredentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PublicProfile is the subset of a user visible to anyone by id.
type PublicProfile struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
}
