// Package app wires configuration, persistence, services and HTTP routes
// into a Fiber application.
package app

import (
	"time"

	"inventory/internal/config"
	"inventory/internal/handlers"
	"inventory/internal/middleware"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/internal/validation"
	"inventory/pkg/logger"
	"inventory/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Deps are the resources New builds the application from. Publisher and
// Metrics are optional.
type Deps struct {
	Config    config.Config
	DB        *gorm.DB
	Publisher services.EventPublisher
	Metrics   *metrics.Metrics
}

// New builds the HTTP application.
func New(deps Deps) *fiber.App {
	cfg := deps.Config
	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}

	store := repositories.NewStore(deps.DB, repositories.WithIsolation(cfg.DBIsolation))
	validator := validation.New(store)

	ledgerOpts := []services.Option{
		services.WithMetrics(m),
		services.WithPurchaseUpdatePolicy(cfg.PurchaseUpdatePolicy),
	}
	if deps.Publisher != nil {
		ledgerOpts = append(ledgerOpts, services.WithPublisher(deps.Publisher))
	}

	app := fiber.New(fiber.Config{
		AppName:      "inventory",
		ErrorHandler: handlers.ErrorHandler(cfg.IsDevelopment()),
	})

	app.Use(requestid.New())
	if cfg.IsDevelopment() {
		app.Use(fiberlogger.New())
	}
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(middleware.Metrics(m))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := store.Ping(c.UserContext()); err != nil {
			logger.Error(c.UserContext()).Err(err).Msg("health check failed")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		}
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	apiV1 := app.Group("/api/v1")
	resources := apiV1
	if cfg.AuthEnabled {
		authService := services.NewAuthService(store.Users, cfg.JWTSecret, cfg.JWTTTL)
		handlers.NewAuthHandler(authService).RegisterRoutes(apiV1)
		resources = apiV1.Group("", middleware.AuthRequired(authService))
	}

	handlers.NewCategoryHandler(services.NewCategoryService(store.Categories), validator).RegisterRoutes(resources)
	handlers.NewProductHandler(services.NewProductService(store.Products), validator).RegisterRoutes(resources)
	handlers.NewSupplierHandler(services.NewSupplierService(store.Suppliers), validator).RegisterRoutes(resources)
	handlers.NewPurchaseHandler(services.NewPurchaseService(store, ledgerOpts...), validator).RegisterRoutes(resources)
	handlers.NewSaleHandler(services.NewSaleService(store, ledgerOpts...), validator).RegisterRoutes(resources)
	handlers.NewTransferHandler(services.NewTransferService(store, ledgerOpts...), validator).RegisterRoutes(resources)

	return app
}
