package category

import (
	"go-frameshop/internal/common/api"
	"go-frameshop/internal/config"
	"go-frameshop/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CategoryApi struct {
	Controller *CategoryController
	Config     *config.Config
}

func NewCategoryApi(controller *CategoryController, config *config.Config) api.Route {
	return &CategoryApi{
		Controller: controller,
		Config:     config,
	}
}

func (a *CategoryApi) Setup(app *fiber.App) {
	// Storefront listing is public; mutations require an admin session
	app.Get("/api/categories", a.Controller.ListCategories)

	admin := app.Group("/api/categories", middleware.AuthMiddleware(a.Config.SkipAuth))
	admin.Post("/", a.Controller.CreateCategory)
	admin.Put("/:id", a.Controller.UpdateCategory)
	admin.Delete("/:id", a.Controller.DeleteCategory)
}
