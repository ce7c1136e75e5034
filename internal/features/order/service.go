package order

import (
	"context"
	"fmt"
)

var validStatuses = map[string]bool{
	"pending":    true,
	"processing": true,
	"shipped":    true,
	"delivered":  true,
	"cancelled":  true,
}

var validPaymentStatuses = map[string]bool{
	"pending":  true,
	"paid":     true,
	"failed":   true,
	"refunded": true,
}

type OrderService interface {
	ListOrders(ctx context.Context, f ListFilter) ([]Order, int, error)
	GetOrder(ctx context.Context, id int) (*Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status, paymentStatus string) error
	ListCustomers(ctx context.Context, page, limit int) ([]Customer, int, error)
}

type OrderServiceImpl struct {
	Repo OrderRepository
}

func NewOrderService(repo OrderRepository) OrderService {
	return &OrderServiceImpl{Repo: repo}
}

func (s *OrderServiceImpl) ListOrders(ctx context.Context, f ListFilter) ([]Order, int, error) {
	return s.Repo.List(ctx, f)
}

func (s *OrderServiceImpl) GetOrder(ctx context.Context, id int) (*Order, error) {
	return s.Repo.Get(ctx, id)
}

func (s *OrderServiceImpl) UpdateOrderStatus(ctx context.Context, id int, status, paymentStatus string) error {
	if status == "" && paymentStatus == "" {
		return fmt.Errorf("status or payment_status is required")
	}
	if status != "" && !validStatuses[status] {
		return fmt.Errorf("invalid order status: %s", status)
	}
	if paymentStatus != "" && !validPaymentStatuses[paymentStatus] {
		return fmt.Errorf("invalid payment status: %s", paymentStatus)
	}
	return s.Repo.UpdateStatus(ctx, id, status, paymentStatus)
}

func (s *OrderServiceImpl) ListCustomers(ctx context.Context, page, limit int) ([]Customer, int, error) {
	return s.Repo.ListCustomers(ctx, page, limit)
}
