package order

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go-frameshop/internal/database"
)

type OrderItem struct {
	ID           int     `json:"id"`
	ProductID    *int    `json:"product_id,omitempty"`
	ProductTitle string  `json:"product_title"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
}

type Order struct {
	ID              int         `json:"id"`
	OrderNumber     string      `json:"order_number"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerName    string      `json:"customer_name,omitempty"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"payment_status"`
	Subtotal        float64     `json:"subtotal"`
	TaxAmount       float64     `json:"tax_amount"`
	ShippingAmount  float64     `json:"shipping_amount"`
	TotalAmount     float64     `json:"total_amount"`
	PaymentMethod   string      `json:"payment_method,omitempty"`
	ShippingAddress string      `json:"shipping_address,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Customer is an aggregation over orders grouped by email; there is no
// separate customers table.
type Customer struct {
	Email         string    `json:"email"`
	Name          string    `json:"name,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	OrderCount    int       `json:"order_count"`
	TotalSpent    float64   `json:"total_spent"`
	LastOrderDate time.Time `json:"last_order_date"`
}

type ListFilter struct {
	Page   int
	Limit  int
	Status string
	Search string
}

type OrderRepository interface {
	List(ctx context.Context, f ListFilter) ([]Order, int, error)
	Get(ctx context.Context, id int) (*Order, error)
	UpdateStatus(ctx context.Context, id int, status, paymentStatus string) error
	ListCustomers(ctx context.Context, page, limit int) ([]Customer, int, error)
}

type OrderRepositoryImpl struct {
	db *sql.DB
}

func NewOrderRepository(pg *database.PostgresDB) OrderRepository {
	return &OrderRepositoryImpl{db: pg.DB}
}

const orderColumns = `
	id, order_number, customer_email, COALESCE(customer_name, ''), COALESCE(customer_phone, ''),
	status, payment_status, subtotal, tax_amount, shipping_amount, total_amount,
	COALESCE(payment_method, ''), COALESCE(shipping_address, ''), COALESCE(notes, ''),
	created_at, updated_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (*Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerEmail, &o.CustomerName, &o.CustomerPhone,
		&o.Status, &o.PaymentStatus, &o.Subtotal, &o.TaxAmount, &o.ShippingAmount, &o.TotalAmount,
		&o.PaymentMethod, &o.ShippingAddress, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepositoryImpl) List(ctx context.Context, f ListFilter) ([]Order, int, error) {
	var conds []string
	var args []interface{}

	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(order_number ILIKE $%d OR customer_email ILIKE $%d OR customer_name ILIKE $%d)", n, n, n))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(id) FROM orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	query := fmt.Sprintf(`SELECT %s FROM orders%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		orderColumns, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *o)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepositoryImpl) Get(ctx context.Context, id int) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, product_title, quantity, unit_price, total_price
		FROM order_items WHERE order_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.ProductTitle,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	return o, rows.Err()
}

func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, id int, status, paymentStatus string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = COALESCE(NULLIF($1, ''), status),
		    payment_status = COALESCE(NULLIF($2, ''), payment_status),
		    updated_at = NOW()
		WHERE id = $3`, status, paymentStatus, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *OrderRepositoryImpl) ListCustomers(ctx context.Context, page, limit int) ([]Customer, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT customer_email) FROM orders`).Scan(&total); err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT customer_email,
		       COALESCE(MAX(customer_name), ''),
		       COALESCE(MAX(customer_phone), ''),
		       COUNT(id),
		       COALESCE(SUM(total_amount), 0),
		       MAX(created_at)
		FROM orders
		GROUP BY customer_email
		ORDER BY MAX(created_at) DESC
		LIMIT $1 OFFSET $2`, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.Email, &c.Name, &c.Phone, &c.OrderCount,
			&c.TotalSpent, &c.LastOrderDate); err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	return customers, total, rows.Err()
}
