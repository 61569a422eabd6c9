package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Dulceria-api/internal/domain/repository"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/seed"
	"github.com/jhoicas/Dulceria-api/pkg/password"
)

var _ repository.Seeder = (*Seeder)(nil)

// Seeder siembra catálogo y cuentas una vez por versión (tabla seed_versions).
type Seeder struct {
	pool    *pgxpool.Pool
	version string
	hasher  password.Hasher
}

// NewSeeder construye el seeder. version vacía usa seed.DefaultVersion.
func NewSeeder(pool *pgxpool.Pool, version string, hasher password.Hasher) *Seeder {
	if version == "" {
		version = seed.DefaultVersion
	}
	return &Seeder{pool: pool, version: version, hasher: hasher}
}

// Initialize: en una sola transacción registra la versión y, si es nueva, reemplaza los datos.
func (s *Seeder) Initialize(ctx context.Context) error {
	return inTx(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`INSERT INTO seed_versions (version) VALUES ($1) ON CONFLICT (version) DO NOTHING`, s.version)
		if err != nil {
			return fmt.Errorf("registrar versión de semilla: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		if _, err := tx.Exec(ctx, `DELETE FROM sweets`); err != nil {
			return fmt.Errorf("limpiar sweets: %w", err)
		}
		for _, sw := range seed.Sweets() {
			_, err := tx.Exec(ctx, `
				INSERT INTO sweets (id, name, category, price, quantity, description, image)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				sw.ID, sw.Name, sw.Category, sw.Price, sw.Quantity, sw.Description, sw.Image,
			)
			if err != nil {
				return fmt.Errorf("seed sweet %s: %w", sw.ID, err)
			}
		}

		now := time.Now().UTC()
		for _, a := range seed.Accounts() {
			hash, err := s.hasher.Hash(a.Password)
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx, `
				INSERT INTO users (id, username, password_hash, role, created_at)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash, role = EXCLUDED.role`,
				a.ID, a.Username, hash, a.Role, now,
			)
			if err != nil {
				return fmt.Errorf("seed user %s: %w", a.Username, err)
			}
		}
		return nil
	})
}
