package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/componentes-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       AuthService
	InventoryUC  InventoryService
	Sessions     SessionVerifier
	Cookie       SessionCookie
	LoginLimiter *LoginRateLimiter // opcional
	Metrics      MetricsRecorder   // opcional
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie, deps.Metrics)
	if deps.LoginLimiter != nil {
		api.Post("/login", deps.LoginLimiter.Middleware(), authHandler.Login)
	} else {
		api.Post("/login", authHandler.Login)
	}
	api.Get("/logout", authHandler.Logout)
	api.Delete("/delete", authHandler.Delete)

	authn := AuthMiddleware(deps.Sessions, deps.Cookie.Name)

	// Registro: solo admin
	api.Post("/registration", authn, RequireRole(entity.RoleAdmin), authHandler.Registration)

	// Inventario: solo bodeguero
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Metrics)
	stock := RequireRole(entity.RoleBodeguero)
	api.Post("/set-price", authn, stock, inventoryHandler.SetPrice)
	api.Post("/add-component", authn, stock, inventoryHandler.AddComponent)
	api.Post("/update-component", authn, stock, inventoryHandler.UpdateComponent)
	api.Get("/list-components", authn, stock, inventoryHandler.ListComponents)
	api.Get("/list-stack", authn, stock, inventoryHandler.ListStack)
	api.Get("/list-stack/pdf", authn, stock, inventoryHandler.StackReportPDF)
}
