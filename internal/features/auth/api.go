package auth

import (
	"go-frameshop/internal/common/api"
	"go-frameshop/internal/config"
	"go-frameshop/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	Controller *AuthController
	Config     *config.Config
}

func NewAuthApi(controller *AuthController, config *config.Config) api.Route {
	return &AuthApi{
		Controller: controller,
		Config:     config,
	}
}

func (a *AuthApi) Setup(app *fiber.App) {
	app.Post("/api/admin/auth/login", a.Controller.Login)
	app.Get("/api/admin/auth/verify", middleware.AuthMiddleware(a.Config.SkipAuth), a.Controller.Verify)
}
