package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caixalivre/pdv-api/internal/application/auth"
	"github.com/caixalivre/pdv-api/internal/application/reports"
	"github.com/caixalivre/pdv-api/internal/application/sales"
	"github.com/caixalivre/pdv-api/internal/application/stock"
	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/internal/application/usecase"
	"github.com/caixalivre/pdv-api/internal/infrastructure/memstore"
	"github.com/caixalivre/pdv-api/internal/infrastructure/postgres"
	"github.com/caixalivre/pdv-api/internal/infrastructure/storage"
	httpRouter "github.com/caixalivre/pdv-api/internal/interfaces/http"
	"github.com/caixalivre/pdv-api/pkg/config"
	"github.com/caixalivre/pdv-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()

	// Sem banco configurado ou com o banco fora do ar a app sobe mesmo assim:
	// toda operação passa a ser servida pelo armazenamento em memória até o
	// PostgreSQL voltar.
	var (
		pool *pgxpool.Pool
		pg   *store.Set
	)
	if cfg.DB.Empty() {
		log.Warn().Msg("nenhum banco configurado, operando somente em memória")
	} else {
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Warn().Err(err).Msg("PostgreSQL indisponível, operando em modo contingência")
			pool = nil
		} else {
			defer pool.Close()
			pg = postgres.NewRepoSet(pool)
		}
	}
	mem := memstore.NewStore().Set()
	provider := storage.NewSelector(pool, pg, mem, log)

	authUC := auth.NewAuthUseCase(provider, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	businessUC := usecase.NewBusinessUseCase(provider)
	productUC := usecase.NewProductUseCase(provider)
	finalizeSaleUC := sales.NewFinalizeSaleUseCase(provider)
	listSalesUC := sales.NewListSalesUseCase(provider)
	registerMovementUC := stock.NewRegisterMovementUseCase(provider)
	salesReportUC := reports.NewSalesReportUseCase(provider)
	nfceUC := usecase.NewNFCeUseCase(provider, usecase.NFCeConfig{
		Environment: cfg.NFCe.Environment,
		UFCode:      cfg.NFCe.UFCode,
		Series:      cfg.NFCe.Series,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		BusinessUC:       businessUC,
		ProductUC:        productUC,
		FinalizeSale:     finalizeSaleUC,
		ListSales:        listSalesUC,
		RegisterMovement: registerMovementUC,
		SalesReport:      salesReportUC,
		NFCeUC:           nfceUC,
		Storage:          provider,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
