// seed carga el catálogo y las cuentas de demostración en el almacenamiento configurado.
//
// Uso: go run ./cmd/seed [--version v3]
// Una versión distinta a la ya sembrada sobrescribe usuarios y dulces.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jhoicas/Dulceria-api/internal/infrastructure/backend"
	"github.com/jhoicas/Dulceria-api/pkg/config"
	"github.com/jhoicas/Dulceria-api/pkg/logger"
	"github.com/jhoicas/Dulceria-api/pkg/password"
)

func main() {
	version := pflag.String("version", "", "versión de la semilla (por defecto STORE_SEED_VERSION)")
	pflag.Parse()

	if err := run(*version); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run(version string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if version != "" {
		cfg.Store.SeedVersion = version
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	ctx := context.Background()

	store, err := backend.Open(ctx, cfg, password.Hasher{Cost: cfg.App.BcryptCost}, log)
	if err != nil {
		return fmt.Errorf("abrir almacenamiento: %w", err)
	}
	defer store.Close()

	if err := store.Seeder.Initialize(ctx); err != nil {
		return fmt.Errorf("sembrar: %w", err)
	}
	log.Info().Str("version", cfg.Store.SeedVersion).Str("driver", store.Driver).Msg("semilla aplicada")
	return nil
}
