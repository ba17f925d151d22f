package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/auth"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/operation"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/sync"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/usecase"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/infrastructure/email"
	infrapdf "github.com/PabloGuzmanGIT/VraenApp-Backend/internal/infrastructure/pdf"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/infrastructure/postgres"
	httpRouter "github.com/PabloGuzmanGIT/VraenApp-Backend/internal/interfaces/http"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/pkg/config"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	operationRepo := postgres.NewOperationRepository(pool)
	moneyRepo := postgres.NewMoneyMovementRepository(pool)
	productMovementRepo := postgres.NewProductMovementRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	incomeRepo := postgres.NewIncomeRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	orgRepo := postgres.NewOrganizationRepository(pool)
	syncLogRepo := postgres.NewSyncLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := email.NewSMTPNotifier(cfg.SMTP, log)
	statementGen := infrapdf.NewMarotoStatementGenerator()

	authUC := auth.NewUseCase(userRepo, orgRepo, notifier, auth.Config{
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
		JWTExpMinutes: cfg.JWT.Expiration,
	}, log)
	operationUC := operation.NewUseCase(
		operationRepo, moneyRepo, productMovementRepo,
		providerRepo, productRepo, userRepo,
		txRunner, statementGen, notifier, log,
	)
	syncUC := sync.NewUseCase(
		operationRepo, moneyRepo, productMovementRepo,
		providerRepo, clientRepo, productRepo,
		expenseRepo, incomeRepo, syncLogRepo, log,
	)
	providerUC := usecase.NewProviderUseCase(providerRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	incomeUC := usecase.NewIncomeUseCase(incomeRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, clientRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		OperationUC: operationUC,
		SyncUC:      syncUC,
		ProviderUC:  providerUC,
		ClientUC:    clientUC,
		ProductUC:   productUC,
		ExpenseUC:   expenseUC,
		IncomeUC:    incomeUC,
		SaleUC:      saleUC,
		JWTSecret:   cfg.JWT.Secret,
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
