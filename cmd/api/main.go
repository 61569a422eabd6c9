package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jhoicas/Dulceria-api/docs"
	"github.com/jhoicas/Dulceria-api/internal/application/auth"
	"github.com/jhoicas/Dulceria-api/internal/application/sweets"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/Dulceria-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Dulceria-api/internal/interfaces/http"
	"github.com/jhoicas/Dulceria-api/pkg/config"
	"github.com/jhoicas/Dulceria-api/pkg/logger"
	"github.com/jhoicas/Dulceria-api/pkg/password"
)

// @title        Dulcería API
// @version      1.0
// @description  Catálogo, stock y autenticación de la dulcería.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	// Con tokens opacos el middleware no puede verificar identidad.
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio para el servidor HTTP")
	}

	ctx := context.Background()
	hasher := password.Hasher{Cost: cfg.App.BcryptCost}
	store, err := backend.Open(ctx, cfg, hasher, logger.Component(log, "store"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.Close()

	if err := store.Seeder.Initialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("sembrar datos iniciales")
	}

	tokens := auth.NewTokenIssuer(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	authUC := auth.NewAuthUseCase(store.Users, tokens, hasher, logger.Component(log, "auth"))
	sweetUC := sweets.NewSweetUseCase(store.Sweets, logger.Component(log, "sweets"))
	reportGen := infrapdf.NewMarotoReportGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Dulcería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": store.Driver})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		SweetUC:   sweetUC,
		ReportGen: reportGen,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
