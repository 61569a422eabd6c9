package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Dulceria-api/internal/domain"
	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
	"github.com/jhoicas/Dulceria-api/internal/domain/repository"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/kv"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo guarda la última sesión (usuario sin password + token) en dos entradas.
// Vive fuera del Store de dominio: es estado del cliente.
type SessionRepo struct {
	medium kv.Medium
}

// NewSessionRepository construye el repositorio de sesión sobre el medio del cliente.
func NewSessionRepository(medium kv.Medium) *SessionRepo {
	return &SessionRepo{medium: medium}
}

// Save persiste usuario y token.
func (r *SessionRepo) Save(ctx context.Context, session entity.Session) error {
	b, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	if err := r.medium.Set(ctx, KeyAuthUser, string(b)); err != nil {
		return err
	}
	return r.medium.Set(ctx, KeyAuthToken, session.Token)
}

// Load devuelve la sesión guardada; nil, nil si falta alguna de las dos entradas.
func (r *SessionRepo) Load(ctx context.Context) (*entity.Session, error) {
	rawUser, okUser, err := r.medium.Get(ctx, KeyAuthUser)
	if err != nil {
		return nil, err
	}
	token, okToken, err := r.medium.Get(ctx, KeyAuthToken)
	if err != nil {
		return nil, err
	}
	if !okUser || !okToken {
		return nil, nil
	}
	var user entity.PublicUser
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreCorrupt, KeyAuthUser, err)
	}
	return &entity.Session{User: user, Token: token}, nil
}

// Clear elimina ambas entradas.
func (r *SessionRepo) Clear(ctx context.Context) error {
	if err := r.medium.Delete(ctx, KeyAuthUser); err != nil {
		return err
	}
	return r.medium.Delete(ctx, KeyAuthToken)
}
