package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/auth"
	"github.com/jhoicas/kardex-api/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Writer    *ledger.Writer
	Reader    *ledger.Reader
	Report    *ledger.ReportUseCase
	AuthUC    *auth.UseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas internas (requieren Bearer Token con la credencial de cuenta)
	internal := api.Group("/internal", AuthMiddleware(deps.JWTSecret))

	movementHandler := NewStockMovementHandler(deps.Writer, deps.Reader, deps.Report)
	movements := internal.Group("/stock-movements")
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/report", movementHandler.Report)

	productHandler := NewProductStockHandler(deps.Reader)
	products := internal.Group("/products")
	products.Get("/:id/stock", productHandler.GetStock)
	products.Get("/:id/movement-history", productHandler.MovementHistory)
}
