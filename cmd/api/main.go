package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/jhoicas/componentes-api/docs"
	"github.com/jhoicas/componentes-api/internal/application/auth"
	"github.com/jhoicas/componentes-api/internal/application/dto"
	"github.com/jhoicas/componentes-api/internal/application/inventory"
	"github.com/jhoicas/componentes-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/componentes-api/internal/infrastructure/pdf"
	"github.com/jhoicas/componentes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/componentes-api/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/componentes-api/internal/interfaces/http"
	"github.com/jhoicas/componentes-api/pkg/config"
	"github.com/jhoicas/componentes-api/pkg/logger"
)

// @title                       Componentes API
// @version                     1.0
// @description                 API de inventario de componentes electrónicos: sesiones con rol, precios, cantidades y stock.
// @host                        localhost:8080
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Token de sesión con el prefijo Bearer.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	componentRepo := postgres.NewComponentRepository(pool)
	stackRepo := postgres.NewStackRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessions := auth.NewSessionIssuer(sessionRepo, auth.JWTConfig{
		Secret:       cfg.JWT.Secret,
		TTL:          cfg.JWT.TTL(),
		Issuer:       cfg.JWT.Issuer,
		QueryTimeout: cfg.DB.QueryTimeout,
	})
	authUC := auth.NewAuthUseCase(userRepo, sessions, auth.Config{
		BcryptCost:   cfg.Auth.BcryptCost,
		QueryTimeout: cfg.DB.QueryTimeout,
	}, log)

	// PDF: reporte del stock disponible
	reportGen := infrapdf.NewStackReportGenerator(cfg.App.Name + " - stock disponible")
	inventoryUC := inventory.NewInventoryUseCase(txRunner, componentRepo, stackRepo, reportGen, cfg.DB.QueryTimeout, log)

	// Purga periódica de sesiones revocadas ya expiradas
	purge, err := scheduler.New(cfg.Session.PurgeCron, sessions, cfg.DB.QueryTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}
	purge.Start()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	loginLimiter := httpRouter.NewLoginRateLimiter(httpRouter.LoginRateLimiterConfig{
		PerMinute: cfg.Auth.LoginRatePerMinute,
		Burst:     cfg.Auth.LoginBurst,
	}, collector)
	defer loginLimiter.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Componentes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := postgres.Ping(c.UserContext(), pool, cfg.DB.QueryTimeout); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded", Database: "down"})
		}
		return c.JSON(dto.HealthResponse{Status: "ok", Database: "up"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(registry)))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		InventoryUC:  inventoryUC,
		Sessions:     sessions,
		Cookie:       httpRouter.SessionCookie{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure},
		LoginLimiter: loginLimiter,
		Metrics:      collector,
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
	purge.Stop(shutdownCtx)

	log.Info().Msg("aplicación detenida")
}
