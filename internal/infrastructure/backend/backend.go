// Package backend arma los repositorios de la tienda según STORE_DRIVER.
package backend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Dulceria-api/internal/domain/repository"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/kv"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/localstore"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Dulceria-api/pkg/config"
	"github.com/jhoicas/Dulceria-api/pkg/password"
)

// Backend repositorios listos para inyectar en los casos de uso.
type Backend struct {
	Driver string
	Sweets repository.SweetRepository
	Users  repository.UserRepository
	Seeder repository.Seeder
	// Medium es nil con el driver postgres.
	Medium kv.Medium

	closers []func() error
}

// Open conecta el almacenamiento configurado. seedVersion vacío usa cfg.Store.SeedVersion.
func Open(ctx context.Context, cfg *config.Config, hasher password.Hasher, log zerolog.Logger) (*Backend, error) {
	b := &Backend{Driver: cfg.Store.Driver}
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		b.closers = append(b.closers, func() error { pool.Close(); return nil })
		if err := postgres.Migrate(ctx, pool); err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("postgres migrate: %w", err)
		}
		b.Sweets = postgres.NewSweetRepository(pool)
		b.Users = postgres.NewUserRepository(pool)
		b.Seeder = postgres.NewSeeder(pool, cfg.Store.SeedVersion, hasher)
	default:
		medium, err := OpenMedium(ctx, cfg)
		if err != nil {
			return nil, err
		}
		b.Medium = medium
		b.closers = append(b.closers, medium.Close)
		store := localstore.New(medium, localstore.WithLatency(cfg.Store.Latency))
		b.Sweets = localstore.NewSweetRepository(store)
		b.Users = localstore.NewUserRepository(store)
		b.Seeder = localstore.NewSeeder(store, cfg.Store.SeedVersion, hasher)
	}
	log.Info().Str("driver", b.Driver).Msg("almacenamiento listo")
	return b, nil
}

// OpenMedium abre el medio clave-valor del driver (sqlite, memory o redis).
func OpenMedium(ctx context.Context, cfg *config.Config) (kv.Medium, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		return kv.NewMemory(), nil
	case config.DriverRedis:
		client, err := kv.ConnectRedis(ctx, kv.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		return kv.NewRedis(client), nil
	case config.DriverSQLite:
		return kv.OpenSQLite(cfg.Store.SQLitePath)
	default:
		return nil, fmt.Errorf("driver sin medio clave-valor: %q", cfg.Store.Driver)
	}
}

// Close libera conexiones en orden inverso de apertura.
func (b *Backend) Close() error {
	var first error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	b.closers = nil
	return first
}
