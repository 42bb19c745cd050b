package main

import (
	"context"
	"time"

	playgroundValidator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/labelmint/labelmint/internal/api"
	v1 "github.com/labelmint/labelmint/internal/api/v1"
	"github.com/labelmint/labelmint/internal/api/v1/middleware"
	"github.com/labelmint/labelmint/internal/api/validator"
	"github.com/labelmint/labelmint/internal/config"
	"github.com/labelmint/labelmint/internal/database"
	"github.com/labelmint/labelmint/internal/errors"
	"github.com/labelmint/labelmint/internal/metrics"
	"github.com/labelmint/labelmint/internal/repository"
	"github.com/labelmint/labelmint/internal/service"
	"github.com/labelmint/labelmint/pkg/httpclient"
	"github.com/labelmint/labelmint/pkg/razorpay"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const dbMetricsInterval = 15 * time.Second

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			newFiberApp,
			database.NewConnection,
			metrics.NewMetrics,
			metrics.NewDatabaseMetricsCollector,
			newValidator,
			newGateway,
			repository.NewTransactionManager,
			repository.NewUserRepository,
			repository.NewPaymentRepository,
			repository.NewLabelRepository,
			service.NewUserService,
			service.NewOrderService,
			service.NewReconcilerService,
			service.NewLabelService,
			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func newFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: errors.ErrorHandler()})
}

func newValidator(m *metrics.Metrics) validator.IXValidator {
	return validator.NewXValidator(playgroundValidator.New(), m)
}

func newGateway(cfg *config.Config) razorpay.Gateway {
	client := httpclient.NewHTTPClient(cfg.Razorpay.Timeout)
	return razorpay.NewGateway(cfg.Razorpay, client)
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, m *metrics.Metrics, dbCollector *metrics.DatabaseMetricsCollector, logger *zap.Logger, lc fx.Lifecycle) {
	app.Use(middleware.HealthCheckMiddleware("labelmint"))
	app.Use(middleware.HTTPMetricsMiddleware(m, logger))

	promHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		promHandler(c.Context())
		return nil
	})

	api.SetupRoutes(app, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			dbCollector.Start(dbMetricsInterval)
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			dbCollector.Stop()
			return app.ShutdownWithContext(ctx)
		},
	})
}
