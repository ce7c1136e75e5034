package order

import (
	"go-frameshop/internal/common/api"
	"go-frameshop/internal/config"
	"go-frameshop/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type OrderApi struct {
	Controller *OrderController
	Config     *config.Config
}

func NewOrderApi(controller *OrderController, config *config.Config) api.Route {
	return &OrderApi{
		Controller: controller,
		Config:     config,
	}
}

func (a *OrderApi) Setup(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.AuthMiddleware(a.Config.SkipAuth))

	admin.Get("/orders", a.Controller.ListOrders)
	admin.Get("/orders/:id", a.Controller.GetOrder)
	admin.Put("/orders/:id/status", a.Controller.UpdateOrderStatus)
	admin.Get("/customers", a.Controller.ListCustomers)
}
