package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Dulceria-api/internal/application/auth"
	"github.com/jhoicas/Dulceria-api/internal/application/sweets"
	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	SweetUC   *sweets.SweetUseCase
	ReportGen sweets.ReportGenerator
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Sweets (protegido; escritura de catálogo y reposición solo ADMIN)
	sweetGroup := api.Group("/sweets", requireAuth)
	sweetHandler := NewSweetHandler(deps.SweetUC, deps.ReportGen)
	sweetGroup.Get("/", sweetHandler.List)
	sweetGroup.Get("/categories", sweetHandler.Categories)
	sweetGroup.Get("/report.pdf", adminOnly, sweetHandler.Report)
	sweetGroup.Get("/:id", sweetHandler.GetByID)
	sweetGroup.Post("/:id/purchase", sweetHandler.Purchase)

	sweetGroup.Post("/", adminOnly, sweetHandler.Create)
	sweetGroup.Put("/:id", adminOnly, sweetHandler.Update)
	sweetGroup.Delete("/:id", adminOnly, sweetHandler.Delete)
	sweetGroup.Post("/:id/restock", adminOnly, sweetHandler.Restock)
}
