package repository

import (
	"context"

	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// FindByUsername búsqueda exacta; nil, nil si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// Create devuelve ErrDuplicateUsername si el username ya existe.
	Create(ctx context.Context, user *entity.User) error
}
