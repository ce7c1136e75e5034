package category

import (
	"github.com/gofiber/fiber/v2"
)

type CategoryController struct {
	Service CategoryService
}

func NewCategoryController(service CategoryService) *CategoryController {
	return &CategoryController{Service: service}
}

// ListCategories godoc
// @Summary List categories
// @Description List active categories with product counts
// @Tags categories
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/categories [get]
func (ctrl *CategoryController) ListCategories(c *fiber.Ctx) error {
	categories, err := ctrl.Service.ListCategories(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if categories == nil {
		categories = []Category{}
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"categories": categories,
		"total":      len(categories),
	})
}

// CreateCategory godoc
// @Summary Create category
// @Description Create a new category; the slug is derived from the name
// @Tags categories
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/categories [post]
func (ctrl *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var cat Category
	if err := c.BodyParser(&cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if cat.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category name is required"})
	}

	id, err := ctrl.Service.CreateCategory(c.UserContext(), &cat)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      id,
		"message": "Category created successfully",
	})
}

// UpdateCategory godoc
// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/categories/{id} [put]
func (ctrl *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
	}

	var cat Category
	if err := c.BodyParser(&cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	cat.ID = id

	if err := ctrl.Service.UpdateCategory(c.UserContext(), &cat); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Category updated successfully"})
}

// DeleteCategory godoc
// @Summary Delete category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
	}

	if err := ctrl.Service.DeleteCategory(c.UserContext(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Category deleted successfully"})
}
