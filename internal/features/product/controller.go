package product

import (
	"database/sql"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type ProductController struct {
	Service ProductService
}

func NewProductController(service ProductService) *ProductController {
	return &ProductController{Service: service}
}

// ListProducts godoc
// @Summary List products
// @Description Paginated product listing with category, search, price and featured filters
// @Tags products
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param category query string false "Category slug"
// @Param search query string false "Search term"
// @Success 200 {object} map[string]interface{}
// @Router /api/products [get]
func (ctrl *ProductController) ListProducts(c *fiber.Ctx) error {
	f := ListFilter{
		Page:         c.QueryInt("page", 1),
		Limit:        c.QueryInt("limit", 12),
		CategorySlug: c.Query("category"),
		Search:       c.Query("search"),
		SortBy:       c.Query("sortBy", "created_at"),
		SortOrder:    c.Query("sortOrder", "DESC"),
		Featured:     c.Query("featured") == "true",
	}
	if v := c.Query("minPrice"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &min
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &max
		}
	}

	products, total, err := ctrl.Service.ListProducts(c.UserContext(), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if products == nil {
		products = []Product{}
	}

	pages := int(math.Ceil(float64(total) / float64(f.Limit)))
	return c.JSON(fiber.Map{
		"success":  true,
		"products": products,
		"pagination": fiber.Map{
			"page":    f.Page,
			"limit":   f.Limit,
			"total":   total,
			"pages":   pages,
			"hasNext": f.Page < pages,
			"hasPrev": f.Page > 1,
		},
	})
}

// GetProduct godoc
// @Summary Get product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} Product
// @Failure 404 {object} map[string]interface{}
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	p, err := ctrl.Service.GetProduct(c.UserContext(), id)
	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "product": p})
}

// CreateProduct godoc
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/products [post]
func (ctrl *ProductController) CreateProduct(c *fiber.Ctx) error {
	var p Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, err := ctrl.Service.CreateProduct(c.UserContext(), &p)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      id,
		"message": "Product created successfully",
	})
}

// UpdateProduct godoc
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	var p Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	p.ID = id

	if err := ctrl.Service.UpdateProduct(c.UserContext(), &p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Product updated successfully"})
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	if err := ctrl.Service.DeleteProduct(c.UserContext(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Product deleted successfully"})
}
