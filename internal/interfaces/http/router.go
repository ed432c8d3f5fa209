package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/hierarchy"
	"github.com/jhoicas/almacen-api/internal/application/reports"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC    *hierarchy.WarehouseUseCase
	SectionUC      *hierarchy.SectionUseCase
	RackUC         *hierarchy.RackUseCase
	RackLevelUC    *hierarchy.RackLevelUseCase
	SlotUC         *hierarchy.RackLevelSlotUseCase
	WaitingRoomUC  *hierarchy.WaitingRoomUseCase
	ProductUC      *usecase.ProductUseCase
	ReceptionUC    *stock.ReceptionUseCase
	IssueUC        *stock.IssueUseCase
	MoveUC         *stock.MoveStockUseCase
	MovementReport *reports.MovementReportUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
// La gestión de contenedores (almacén, secciones, estanterías, niveles,
// casillas, salas) exige permiso de staff; mover stocks exige el permiso
// correspondiente; el resto solo exige token válido.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	staff := protected.Group("/", RequireStaff())

	// Warehouse (staff)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses := staff.Group("/warehouses")
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.Get)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Sections (staff)
	sectionHandler := NewSectionHandler(deps.SectionUC)
	sections := staff.Group("/sections")
	sections.Post("/", sectionHandler.Create)
	sections.Get("/", sectionHandler.List)
	sections.Get("/:id", sectionHandler.GetByID)
	sections.Put("/:id", sectionHandler.Update)
	sections.Delete("/:id", sectionHandler.Delete)

	// Racks (staff)
	rackHandler := NewRackHandler(deps.RackUC)
	racks := staff.Group("/racks")
	racks.Post("/", rackHandler.Create)
	racks.Get("/", rackHandler.ListBySection)
	racks.Get("/:id", rackHandler.GetByID)
	racks.Put("/:id", rackHandler.Update)
	racks.Delete("/:id", rackHandler.Delete)

	// Rack levels (staff)
	levelHandler := NewRackLevelHandler(deps.RackLevelUC)
	levels := staff.Group("/rack-levels")
	levels.Post("/", levelHandler.Create)
	levels.Get("/", levelHandler.ListByRack)
	levels.Get("/:id", levelHandler.GetByID)
	levels.Put("/:id", levelHandler.Update)
	levels.Delete("/:id", levelHandler.Delete)

	// Rack level slots (staff; no create/delete directos)
	slotHandler := NewRackLevelSlotHandler(deps.SlotUC)
	slots := staff.Group("/rack-level-slots")
	slots.Get("/", slotHandler.ListByLevel)
	slots.Get("/:id", slotHandler.GetByID)
	slots.Put("/:id", slotHandler.Update)
	slots.Post("/:id/activate", slotHandler.Activate)
	slots.Post("/:id/deactivate", slotHandler.Deactivate)

	// Waiting rooms (staff)
	roomHandler := NewWaitingRoomHandler(deps.WaitingRoomUC)
	rooms := staff.Group("/waiting-rooms")
	rooms.Post("/", roomHandler.Create)
	rooms.Get("/", roomHandler.List)
	rooms.Get("/:id", roomHandler.GetByID)
	rooms.Put("/:id", roomHandler.Update)
	rooms.Delete("/:id", roomHandler.Delete)

	// Products (protegido)
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/legacy", productHandler.MarkLegacy)

	// Stocks: recepciones, emisiones, movimientos (protegido)
	stockHandler := NewStockHandler(deps.ReceptionUC, deps.IssueUC, deps.MoveUC)
	protected.Post("/receptions", stockHandler.CreateReception)
	protected.Get("/receptions/:id", stockHandler.GetReception)
	protected.Post("/issues", stockHandler.CreateIssue)
	protected.Get("/issues/:id", stockHandler.GetIssue)
	stocks := protected.Group("/stocks")
	stocks.Get("/", stockHandler.ListStocks)
	stocks.Get("/:id", stockHandler.GetStock)
	stocks.Get("/:id/movements", stockHandler.History)
	stocks.Post("/:id/move", RequireMover(), stockHandler.Move)

	// Reports (staff)
	reportHandler := NewReportHandler(deps.MovementReport)
	staff.Get("/reports/movements", reportHandler.MovementReport)
}
