// dulcectl cliente de línea de comandos de la dulcería. Trabaja en proceso sobre el
// mismo almacenamiento que la API y guarda la sesión entre invocaciones.
//
// Uso:
//
//	dulcectl login USER PASS
//	dulcectl register USER PASS
//	dulcectl logout | whoami
//	dulcectl list [--search TEXTO] [--category CAT]
//	dulcectl buy ID QTY
//	dulcectl restock ID QTY        (solo ADMIN)
//	dulcectl report [--out FILE]   (solo ADMIN)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/Dulceria-api/internal/application/auth"
	"github.com/jhoicas/Dulceria-api/internal/application/session"
	"github.com/jhoicas/Dulceria-api/internal/application/sweets"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/backend"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/kv"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/Dulceria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Dulceria-api/pkg/config"
	"github.com/jhoicas/Dulceria-api/pkg/logger"
	"github.com/jhoicas/Dulceria-api/pkg/password"
)

const defaultSessionPath = "dulcectl-session.db"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "dulcectl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	// La CLI solo registra advertencias para no ensuciar la salida.
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: os.Stderr})

	hasher := password.Hasher{Cost: cfg.App.BcryptCost}
	store, err := backend.Open(ctx, cfg, hasher, log)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Seeder.Initialize(ctx); err != nil {
		return err
	}

	sessionMedium, closeSession, err := openSessionMedium(cfg, store)
	if err != nil {
		return err
	}
	defer closeSession()

	c := &cli{
		auth: auth.NewAuthUseCase(store.Users, auth.NewTokenIssuer(auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}), hasher, log),
		sweets:  sweets.NewSweetUseCase(store.Sweets, log),
		session: session.NewManager(localstore.NewSessionRepository(sessionMedium)),
		report:  infrapdf.NewMarotoReportGenerator(cfg.App.Name),
		out:     os.Stdout,
	}
	return c.run(ctx, args)
}

// openSessionMedium usa SESSION_PATH si está definido; si no, comparte el medio del
// almacenamiento cuando es durable y local (sqlite).
func openSessionMedium(cfg *config.Config, store *backend.Backend) (kv.Medium, func(), error) {
	path := cfg.Session.Path
	if path == "" && store.Driver == config.DriverSQLite && store.Medium != nil {
		return store.Medium, func() {}, nil
	}
	if path == "" {
		path = defaultSessionPath
	}
	m, err := kv.OpenSQLite(path)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir sesión: %w", err)
	}
	return m, func() { _ = m.Close() }, nil
}

