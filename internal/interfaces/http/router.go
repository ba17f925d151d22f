package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/auth"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/operation"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/sync"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	OperationUC *operation.UseCase
	SyncUC      *sync.UseCase
	ProviderUC  *usecase.ProviderUseCase
	ClientUC    *usecase.ClientUseCase
	ProductUC   *usecase.ProductUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	IncomeUC    *usecase.IncomeUseCase
	SaleUC      *usecase.SaleUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/me", authHandler.Me)

	// Organizaciones (protegido)
	orgs := protected.Group("/organizations")
	orgHandler := NewOrganizationHandler(deps.AuthUC)
	orgs.Post("/", orgHandler.Create)
	orgs.Post("/:id/members", orgHandler.AddMember)

	// Operaciones y sus movimientos (protegido)
	operations := protected.Group("/operations")
	operationHandler := NewOperationHandler(deps.OperationUC)
	operations.Post("/", operationHandler.Create)
	operations.Get("/", operationHandler.List)
	operations.Get("/:id", operationHandler.GetDetail)
	operations.Put("/:id", operationHandler.Update)
	operations.Post("/:id/close", operationHandler.Close)
	operations.Post("/:id/money-movements", operationHandler.AddMoneyMovement)
	operations.Post("/:id/product-movements", operationHandler.AddProductMovement)
	operations.Get("/:id/statement", operationHandler.Statement)
	operations.Delete("/:id", operationHandler.Delete)

	// Sincronización offline-first (protegido)
	syncGroup := protected.Group("/sync")
	syncHandler := NewSyncHandler(deps.SyncUC)
	syncGroup.Post("/push", syncHandler.Push)
	syncGroup.Get("/pull", syncHandler.Pull)
	syncGroup.Get("/status", syncHandler.Status)

	// Proveedores (protegido)
	providers := protected.Group("/providers")
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers.Post("/", providerHandler.Create)
	providers.Get("/", providerHandler.List)
	providers.Get("/:id", providerHandler.GetByID)
	providers.Put("/:id", providerHandler.Update)
	providers.Delete("/:id", providerHandler.Delete)

	// Clientes (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Productos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Gastos (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Ingresos (protegido)
	incomes := protected.Group("/incomes")
	incomeHandler := NewIncomeHandler(deps.IncomeUC)
	incomes.Post("/", incomeHandler.Create)
	incomes.Get("/", incomeHandler.List)
	incomes.Get("/:id", incomeHandler.GetByID)
	incomes.Put("/:id", incomeHandler.Update)
	incomes.Delete("/:id", incomeHandler.Delete)

	// Ventas y abonos (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Post("/:id/payments", saleHandler.AddPayment)
	sales.Delete("/:id", saleHandler.Delete)
}
