package settings

import (
	"go-frameshop/internal/common/api"
	"go-frameshop/internal/config"
	"go-frameshop/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SettingsApi struct {
	Controller *SettingsController
	Config     *config.Config
}

func NewSettingsApi(controller *SettingsController, config *config.Config) api.Route {
	return &SettingsApi{
		Controller: controller,
		Config:     config,
	}
}

func (a *SettingsApi) Setup(app *fiber.App) {
	group := app.Group("/api/admin/settings", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/", a.Controller.GetSettings)
	group.Post("/", a.Controller.UpdateSettings)
	group.Put("/", a.Controller.ResetSettings)
}
