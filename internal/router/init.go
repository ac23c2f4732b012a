package router

import (
	"github.com/jannofresh/jannofresh-api/internal/application"
	"github.com/jannofresh/jannofresh-api/internal/container"
	handlers "github.com/jannofresh/jannofresh-api/internal/interface/http"
	"github.com/jannofresh/jannofresh-api/internal/router/modules"
)

// InitModules builds the application services from the container singletons
// and registers every feature module. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	production := cfg.Production()

	authSvc := application.NewAuthService(
		container.GetUserStore(),
		container.GetJWT(),
		logger,
		container.GetRabbitPub(),
		cfg.AppName,
		cfg.MailSendEnabled,
	)
	catalogSvc := application.NewCatalogService(
		container.GetProductStore(),
		container.GetRedis(),
		container.GetES(),
		cfg.ESProductsIndex,
		logger,
	)
	orderSvc := application.NewOrderService(
		container.GetOrderStore(),
		container.GetProductStore(),
		container.GetUserStore(),
		container.GetRabbitPub(),
		logger,
		cfg.DeliveryFee,
		cfg.MailSendEnabled,
	)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.JWTExpires, production)
	catalogHandler := handlers.NewCatalogHandler(catalogSvc, logger, production)
	orderHandler := handlers.NewOrderHandler(orderSvc, logger, production)
	adminHandler := handlers.NewAdminHandler(
		catalogSvc, orderSvc, container.GetUserStore(),
		container.GetGCS(), cfg.GCSBucket,
		logger, production,
	)
	healthHandler := handlers.NewHealthHandler(cfg, container.GetPGPool())

	r.Add(modules.NewHealthModule(healthHandler))
	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewCatalogModule(catalogHandler))
	r.Add(modules.NewOrdersModule(orderHandler, container.GetJWT()))
	r.Add(modules.NewAdminModule(adminHandler, container.GetJWT()))
}
