package main

import (
	"context"
	"fmt"
	"log"

	common_api "go-frameshop/internal/common/api"
	"go-frameshop/internal/config"
	"go-frameshop/internal/database"
	"go-frameshop/internal/features/auth"
	"go-frameshop/internal/features/bulkupload"
	"go-frameshop/internal/features/category"
	"go-frameshop/internal/features/order"
	"go-frameshop/internal/features/product"
	"go-frameshop/internal/features/settings"
	"go-frameshop/internal/features/system"
	"go-frameshop/internal/features/user"
	"go-frameshop/internal/logger"
	"go-frameshop/internal/middleware"
	"go-frameshop/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d routes\n", len(routes))
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,

			database.NewPostgres,
			database.NewMongodb,

			user.NewUserRepository,
			product.NewProductRepository,
			category.NewCategoryRepository,
			order.NewOrderRepository,
			settings.NewSettingsRepository,
			bulkupload.NewUploadHistoryRepository,

			auth.NewAuthService,
			product.NewProductService,
			category.NewCategoryService,
			order.NewOrderService,
			settings.NewSettingsService,
			bulkupload.NewBulkUploadService,

			auth.NewAuthController,
			product.NewProductController,
			category.NewCategoryController,
			order.NewOrderController,
			settings.NewSettingsController,
			bulkupload.NewBulkUploadController,

			AsRoute(auth.NewAuthApi),
			AsRoute(product.NewProductApi),
			AsRoute(category.NewCategoryApi),
			AsRoute(order.NewOrderApi),
			AsRoute(settings.NewSettingsApi),
			AsRoute(bulkupload.NewBulkUploadApi),
			AsRoute(system.NewHealthApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			func(cfg *config.Config) {
				utils.SetSecret(cfg.JWTSecret)
			},
			RegisterAllRoutesWithAnnotation,
			StartServer,
		),
	)

	app.Run()
}
