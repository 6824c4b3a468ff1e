package model

import (
	"time"

	"github.com/Astemirdum/seat-booking/pkg/auth"
)

type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Name      string    `json:"name" db:"name"`
	Role      auth.Role `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

func (u User) Principal() auth.Principal {
	return auth.Principal{UserID: u.ID, Email: u.Email, Role: u.Role}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=3"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

type UpdateProfileRequest struct {
	Name *string `json:"name" validate:"omitempty,min=3"`
}

type LibrarianRequest struct {
	LibraryID string `json:"libraryId" validate:"required,uuid"`
}
