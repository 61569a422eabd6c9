package repository

import (
	"context"

	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
)

// SessionRepository persistencia del lado cliente de la última sesión iniciada.
type SessionRepository interface {
	Save(ctx context.Context, session entity.Session) error
	// Load devuelve nil, nil si no hay sesión guardada.
	Load(ctx context.Context) (*entity.Session, error)
	Clear(ctx context.Context) error
}
