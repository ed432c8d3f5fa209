package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/hierarchy"
	"github.com/jhoicas/almacen-api/internal/application/placement"
	"github.com/jhoicas/almacen-api/internal/application/reports"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
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

	// Repos sobre el pool para las rutas de solo lectura; las mutaciones
	// pasan por el TxRunner, que construye repos atados a la transacción.
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	sectionRepo := postgres.NewSectionRepository(pool)
	rackRepo := postgres.NewRackRepository(pool)
	levelRepo := postgres.NewRackLevelRepository(pool)
	slotRepo := postgres.NewRackLevelSlotRepository(pool)
	roomRepo := postgres.NewWaitingRoomRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movRepo := postgres.NewStockMovementRepository(pool)
	receptionRepo := postgres.NewReceptionRepository(pool)
	issueRepo := postgres.NewIssueRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	engine := placement.NewEngine()

	warehouseUC := hierarchy.NewWarehouseUseCase(txRunner, warehouseRepo)
	sectionUC := hierarchy.NewSectionUseCase(txRunner, sectionRepo)
	rackUC := hierarchy.NewRackUseCase(txRunner, rackRepo)
	rackLevelUC := hierarchy.NewRackLevelUseCase(txRunner, levelRepo, slotRepo)
	slotUC := hierarchy.NewRackLevelSlotUseCase(txRunner, slotRepo)
	roomUC := hierarchy.NewWaitingRoomUseCase(txRunner, roomRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	receptionUC := stock.NewReceptionUseCase(txRunner, engine, receptionRepo)
	issueUC := stock.NewIssueUseCase(txRunner, engine, issueRepo)
	moveUC := stock.NewMoveStockUseCase(txRunner, engine, stockRepo, movRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	movementReportUC := reports.NewMovementReportUseCase(movRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		WarehouseUC:    warehouseUC,
		SectionUC:      sectionUC,
		RackUC:         rackUC,
		RackLevelUC:    rackLevelUC,
		SlotUC:         slotUC,
		WaitingRoomUC:  roomUC,
		ProductUC:      productUC,
		ReceptionUC:    receptionUC,
		IssueUC:        issueUC,
		MoveUC:         moveUC,
		MovementReport: movementReportUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
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
