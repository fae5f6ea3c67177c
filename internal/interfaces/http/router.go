package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/comandas-api/internal/application/auth"
	"github.com/tu-usuario/comandas-api/internal/application/billing"
	"github.com/tu-usuario/comandas-api/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC   *inventory.StockUseCase
	BillUC    *billing.BillUseCase
	ReceiptUC *billing.ReceiptUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Las lecturas son públicas; las
// mutaciones requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Stock
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Post("/", protected, stockHandler.Create)
	stock.Put("/:id", protected, stockHandler.Update)
	stock.Delete("/:id", protected, stockHandler.Delete)

	// Bills
	bills := api.Group("/bills")
	billHandler := NewBillHandler(deps.BillUC, deps.ReceiptUC)
	bills.Get("/", billHandler.List)
	bills.Get("/:id", billHandler.GetByID)
	bills.Get("/:id/pdf", billHandler.GetPDF)
	bills.Post("/", protected, billHandler.Create)
	bills.Put("/:id", protected, billHandler.Update)
	bills.Delete("/:id", protected, billHandler.Delete)

	// Bill items
	itemHandler := NewBillItemHandler(deps.BillUC)
	bills.Get("/:id/items", itemHandler.List)
	bills.Post("/:id/items", protected, itemHandler.AddItem)
}
