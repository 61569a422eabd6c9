package session_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Dulceria-api/internal/application/dto"
	"github.com/jhoicas/Dulceria-api/internal/application/session"
	"github.com/jhoicas/Dulceria-api/internal/domain"
	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/kv"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/localstore"
)

func TestManager_SinSesion(t *testing.T) {
	m := session.NewManager(localstore.NewSessionRepository(kv.NewMemory()))
	ctx := context.Background()

	s, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = m.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.NoError(t, m.Clear(ctx))
}

func TestManager_ReanudaEntreAperturas(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	first, err := kv.OpenSQLite(path)
	require.NoError(t, err)
	m := session.NewManager(localstore.NewSessionRepository(first))
	require.NoError(t, m.Save(ctx, &dto.AuthResponse{
		User:  entity.PublicUser{ID: "user1", Username: "user", Role: entity.RoleUser},
		Token: "tok-123",
	}))
	require.NoError(t, first.Close())

	second, err := kv.OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })
	m = session.NewManager(localstore.NewSessionRepository(second))

	s, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user", s.User.Username)
	assert.Equal(t, "tok-123", s.Token)

	_, err = m.RequireAdmin(ctx)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, m.Clear(ctx))
	s, err = m.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestManager_SaveSinToken(t *testing.T) {
	m := session.NewManager(localstore.NewSessionRepository(kv.NewMemory()))
	assert.ErrorIs(t, m.Save(context.Background(), &dto.AuthResponse{}), domain.ErrInvalidInput)
	assert.ErrorIs(t, m.Save(context.Background(), nil), domain.ErrInvalidInput)
}
