package order

import (
	"database/sql"
	"math"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	Service OrderService
}

func NewOrderController(service OrderService) *OrderController {
	return &OrderController{Service: service}
}

// ListOrders godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Param page query int false "Page"
// @Param status query string false "Status filter"
// @Param search query string false "Order number or customer search"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/orders [get]
func (ctrl *OrderController) ListOrders(c *fiber.Ctx) error {
	f := ListFilter{
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 20),
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	orders, total, err := ctrl.Service.ListOrders(c.UserContext(), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if orders == nil {
		orders = []Order{}
	}

	pages := int(math.Ceil(float64(total) / float64(f.Limit)))
	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
		"pagination": fiber.Map{
			"page":  f.Page,
			"limit": f.Limit,
			"total": total,
			"pages": pages,
		},
	})
}

// GetOrder godoc
// @Summary Get order with items
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} Order
// @Failure 404 {object} map[string]interface{}
// @Router /api/admin/orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	o, err := ctrl.Service.GetOrder(c.UserContext(), id)
	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "order": o})
}

type statusUpdateRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param input body statusUpdateRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/orders/{id}/status [put]
func (ctrl *OrderController) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := ctrl.Service.UpdateOrderStatus(c.UserContext(), id, req.Status, req.PaymentStatus); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Order updated successfully"})
}

// ListCustomers godoc
// @Summary List customers aggregated from orders
// @Tags customers
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/customers [get]
func (ctrl *OrderController) ListCustomers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	customers, total, err := ctrl.Service.ListCustomers(c.UserContext(), page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if customers == nil {
		customers = []Customer{}
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"customers": customers,
		"total":     total,
	})
}
