package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User representa una cuenta de la tienda. Username es único y sensible a mayúsculas.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"` // bcrypt, nunca el password plano
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser es la proyección de User sin credenciales.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Public devuelve el usuario sin el hash de password.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Role: u.Role}
}

// IsAdmin indica si el usuario puede administrar el inventario.
func (u PublicUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}
