package settings

import (
	"github.com/gofiber/fiber/v2"
)

type SettingsController struct {
	Service SettingsService
}

func NewSettingsController(service SettingsService) *SettingsController {
	return &SettingsController{Service: service}
}

// GetSettings godoc
// @Summary Get site settings
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/settings [get]
func (ctrl *SettingsController) GetSettings(c *fiber.Ctx) error {
	settings, err := ctrl.Service.GetSettings(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "settings": settings})
}

type updateSettingsRequest struct {
	Settings CompanySettings `json:"settings"`
}

// UpdateSettings godoc
// @Summary Update site settings
// @Tags settings
// @Accept json
// @Produce json
// @Param input body updateSettingsRequest true "Settings"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/admin/settings [post]
func (ctrl *SettingsController) UpdateSettings(c *fiber.Ctx) error {
	var req updateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid settings data"})
	}

	settings, err := ctrl.Service.UpdateSettings(c.UserContext(), req.Settings)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Settings updated successfully",
		"settings": settings,
	})
}

// ResetSettings godoc
// @Summary Reset site settings to defaults
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/settings [put]
func (ctrl *SettingsController) ResetSettings(c *fiber.Ctx) error {
	settings, err := ctrl.Service.ResetSettings(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Settings reset to defaults successfully",
		"settings": settings,
	})
}
