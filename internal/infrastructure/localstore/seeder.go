package localstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
	"github.com/jhoicas/Dulceria-api/internal/domain/repository"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/seed"
	"github.com/jhoicas/Dulceria-api/pkg/password"
)

var _ repository.Seeder = (*Seeder)(nil)

// Seeder carga el catálogo y las cuentas iniciales una vez por versión.
type Seeder struct {
	store   *Store
	version string
	hasher  password.Hasher
}

// NewSeeder construye el seeder. version vacía usa seed.DefaultVersion.
func NewSeeder(store *Store, version string, hasher password.Hasher) *Seeder {
	if version == "" {
		version = seed.DefaultVersion
	}
	return &Seeder{store: store, version: version, hasher: hasher}
}

// MarkerKey entrada que indica que la versión actual ya fue sembrada.
func (s *Seeder) MarkerKey() string {
	return KeyInitPrefix + s.version
}

// Initialize es idempotente: si el marcador de la versión existe no hace nada.
// Con una versión nueva reescribe ambas colecciones.
func (s *Seeder) Initialize(ctx context.Context) error {
	m := s.store.medium
	_, seeded, err := m.Get(ctx, s.MarkerKey())
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	sweets, err := encodeCollection(KeySweets, seed.Sweets())
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	accounts := seed.Accounts()
	users := make([]*entity.User, 0, len(accounts))
	for _, a := range accounts {
		hash, err := s.hasher.Hash(a.Password)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", a.Username, err)
		}
		users = append(users, &entity.User{
			ID:           a.ID,
			Username:     a.Username,
			PasswordHash: hash,
			Role:         a.Role,
			CreatedAt:    now,
		})
	}
	encodedUsers, err := encodeCollection(KeyUsers, users)
	if err != nil {
		return err
	}

	if err := m.Set(ctx, KeySweets, sweets); err != nil {
		return err
	}
	if err := m.Set(ctx, KeyUsers, encodedUsers); err != nil {
		return err
	}
	return m.Set(ctx, s.MarkerKey(), "true")
}
