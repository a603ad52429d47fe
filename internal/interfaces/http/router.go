package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Trunks-api/internal/application/analytics"
	"github.com/jhoicas/Trunks-api/internal/application/auth"
	"github.com/jhoicas/Trunks-api/internal/application/trunks"
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	DashboardUC *appanalytics.DashboardUseCase
	NSOTrunkUC  *trunks.NSOTrunkUseCase
	VNOTrunkUC  *trunks.VNOTrunkUseCase
	CustomerUC  *trunks.CustomerUseCase
	MappingUC   *trunks.TrunkMappingUseCase
	DIDUC       *trunks.DIDUseCase
	Metrics     *Metrics // opcional
}

// crudHandler operaciones comunes de los recursos de inventario.
type crudHandler interface {
	List(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Metrics)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token); el rol se re-lee del store en cada petición.
	// El middleware va en cada recurso y no en /api, para que una ruta inexistente responda 404.
	authRequired := AuthMiddleware(deps.AuthUC)
	adminOnly := RequireRole(entity.RoleAdmin)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", authRequired, dashboardHandler.GetStats)

	mountCRUD(api, "/nso-trunks", NewNSOTrunkHandler(deps.NSOTrunkUC), authRequired, adminOnly)
	mountCRUD(api, "/vno-trunks", NewVNOTrunkHandler(deps.VNOTrunkUC), authRequired, adminOnly)
	mountCRUD(api, "/customers", NewCustomerHandler(deps.CustomerUC), authRequired, adminOnly)
	mountCRUD(api, "/trunk-mappings", NewTrunkMappingHandler(deps.MappingUC), authRequired, adminOnly)
	mountCRUD(api, "/dids", NewDIDHandler(deps.DIDUC), authRequired, adminOnly)
}

// mountCRUD lectura para cualquier usuario autenticado; escritura solo admin.
func mountCRUD(r fiber.Router, path string, h crudHandler, authRequired, adminOnly fiber.Handler) {
	g := r.Group(path)
	g.Get("/", authRequired, h.List)
	g.Get("/:id", authRequired, h.GetByID)
	g.Post("/", authRequired, adminOnly, h.Create)
	g.Put("/:id", authRequired, adminOnly, h.Update)
	g.Delete("/:id", authRequired, adminOnly, h.Delete)
}
