// Package session mantiene la sesión del cliente entre invocaciones.
package session

import (
	"context"

	"github.com/jhoicas/Dulceria-api/internal/application/dto"
	"github.com/jhoicas/Dulceria-api/internal/domain"
	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
	"github.com/jhoicas/Dulceria-api/internal/domain/repository"
)

// Manager guarda, reanuda y cierra la sesión del cliente.
type Manager struct {
	repo repository.SessionRepository
}

// NewManager construye el gestor de sesión.
func NewManager(repo repository.SessionRepository) *Manager {
	return &Manager{repo: repo}
}

// Save persiste el resultado de un login o registro.
func (m *Manager) Save(ctx context.Context, auth *dto.AuthResponse) error {
	if auth == nil || auth.Token == "" {
		return domain.ErrInvalidInput
	}
	return m.repo.Save(ctx, entity.Session{User: auth.User, Token: auth.Token})
}

// Load devuelve la sesión guardada; nil, nil si no hay.
func (m *Manager) Load(ctx context.Context) (*entity.Session, error) {
	return m.repo.Load(ctx)
}

// Current como Load, pero la ausencia es ErrUnauthorized.
func (m *Manager) Current(ctx context.Context) (*entity.Session, error) {
	s, err := m.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrUnauthorized
	}
	return s, nil
}

// RequireAdmin devuelve la sesión actual si pertenece a un administrador.
func (m *Manager) RequireAdmin(ctx context.Context) (*entity.Session, error) {
	s, err := m.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !s.User.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s, nil
}

// Clear cierra la sesión. Sin sesión guardada no es error.
func (m *Manager) Clear(ctx context.Context) error {
	return m.repo.Clear(ctx)
}
