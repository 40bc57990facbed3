package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caixalivre/pdv-api/internal/application/auth"
	"github.com/caixalivre/pdv-api/internal/application/reports"
	"github.com/caixalivre/pdv-api/internal/application/sales"
	"github.com/caixalivre/pdv-api/internal/application/stock"
	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/internal/application/usecase"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	BusinessUC       *usecase.BusinessUseCase
	ProductUC        *usecase.ProductUseCase
	FinalizeSale     *sales.FinalizeSaleUseCase
	ListSales        *sales.ListSalesUseCase
	RegisterMovement *stock.RegisterMovementUseCase
	SalesReport      *reports.SalesReportUseCase
	NFCeUC           *usecase.NFCeUseCase
	Storage          store.Provider
	JWTSecret        string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	// Health (público): informa qual backend serviria a próxima operação.
	health := func(c *fiber.Ctx) error {
		mode := "memory"
		if deps.Storage.Persistent(c.Context()) {
			mode = "postgres"
		}
		return c.JSON(fiber.Map{"status": "ok", "storage": mode})
	}
	app.Get("/health", health)

	api := app.Group("/api")
	api.Get("/health", health)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Businesses: criação exige admin; listagem é escopada pelo papel
	businesses := protected.Group("/business")
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	businesses.Post("/", RequireRole(entity.RoleAdmin), businessHandler.Create)
	businesses.Get("/", businessHandler.List)
	businesses.Get("/:id", businessHandler.GetByID)

	// Products: leitura para qualquer operador, escrita a partir de gerente
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/barcode/:code", productHandler.GetByBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireRole(entity.RoleGerente), productHandler.Create)
	products.Put("/:id", RequireRole(entity.RoleGerente), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleGerente), productHandler.Delete)

	// Sales: o caixa finaliza e consulta
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.FinalizeSale, deps.ListSales)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Stock: lançamento manual a partir de gerente; consulta para todos
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.RegisterMovement)
	stockGroup.Post("/movements", RequireRole(entity.RoleGerente), stockHandler.RegisterMovement)
	stockGroup.Get("/movements", stockHandler.List)

	// Reports: painel do gerente
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.SalesReport)
	reportsGroup.Get("/sales", RequireRole(entity.RoleGerente), reportHandler.SalesSummary)

	// NFC-e: o caixa emite junto com a venda
	nfceGroup := protected.Group("/nfce")
	nfceHandler := NewNFCeHandler(deps.NFCeUC)
	nfceGroup.Post("/", nfceHandler.Create)
	nfceGroup.Get("/", nfceHandler.List)
}
