package dto

import "github.com/jhoicas/Dulceria-api/internal/domain/entity"

// RegisterRequest entrada para registro. El rol lo decide el caso de uso.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse usuario sin password más el token de sesión.
type AuthResponse struct {
	User  entity.PublicUser `json:"user"`
	Token string            `json:"token"`
}
