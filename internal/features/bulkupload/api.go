package bulkupload

import (
	"go-frameshop/internal/common/api"
	"go-frameshop/internal/config"
	"go-frameshop/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type BulkUploadApi struct {
	Controller *BulkUploadController
	Config     *config.Config
}

func NewBulkUploadApi(controller *BulkUploadController, config *config.Config) api.Route {
	return &BulkUploadApi{
		Controller: controller,
		Config:     config,
	}
}

func (a *BulkUploadApi) Setup(app *fiber.App) {
	group := app.Group("/api/admin/bulk-upload", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Post("/preview", a.Controller.Preview)
	group.Post("/", a.Controller.Upload)
	group.Get("/template", a.Controller.Template)
	group.Get("/history", a.Controller.History)
}
