package product

import (
	"go-frameshop/internal/common/api"
	"go-frameshop/internal/config"
	"go-frameshop/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ProductApi struct {
	Controller *ProductController
	Config     *config.Config
}

func NewProductApi(controller *ProductController, config *config.Config) api.Route {
	return &ProductApi{
		Controller: controller,
		Config:     config,
	}
}

func (a *ProductApi) Setup(app *fiber.App) {
	// Storefront reads are public
	app.Get("/api/products", a.Controller.ListProducts)
	app.Get("/api/products/:id", a.Controller.GetProduct)

	admin := app.Group("/api/products", middleware.AuthMiddleware(a.Config.SkipAuth))
	admin.Post("/", a.Controller.CreateProduct)
	admin.Put("/:id", a.Controller.UpdateProduct)
	admin.Delete("/:id", a.Controller.DeleteProduct)
}
