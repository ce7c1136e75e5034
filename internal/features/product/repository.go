package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go-frameshop/internal/database"
	"go-frameshop/pkg/utils"
)

type Product struct {
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description,omitempty"`
	Price            float64   `json:"price"`
	ComparePrice     *float64  `json:"compare_price,omitempty"`
	CategoryID       *int      `json:"category_id,omitempty"`
	CategoryName     string    `json:"category_name,omitempty"`
	CategorySlug     string    `json:"category_slug,omitempty"`
	SKU              string    `json:"sku,omitempty"`
	StockQuantity    int       `json:"stock_quantity"`
	Weight           *float64  `json:"weight,omitempty"`
	Dimensions       string    `json:"dimensions,omitempty"`
	Status           string    `json:"status"`
	Featured         bool      `json:"featured"`
	Tags             string    `json:"tags,omitempty"`
	MetaTitle        string    `json:"meta_title,omitempty"`
	MetaDescription  string    `json:"meta_description,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ListFilter mirrors the storefront query parameters.
type ListFilter struct {
	Page         int
	Limit        int
	CategorySlug string
	Search       string
	SortBy       string
	SortOrder    string
	MinPrice     *float64
	MaxPrice     *float64
	Featured     bool
}

type ProductRepository interface {
	List(ctx context.Context, f ListFilter) ([]Product, int, error)
	Get(ctx context.Context, id int) (*Product, error)
	Insert(ctx context.Context, p *Product) (int, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int) error
	// ExistsByTitleOrSKU reports whether a product with the given title, or
	// (when sku is non-empty) the given SKU, already exists.
	ExistsByTitleOrSKU(ctx context.Context, title, sku string) (bool, error)
}

type ProductRepositoryImpl struct {
	db *sql.DB
}

func NewProductRepository(pg *database.PostgresDB) ProductRepository {
	return &ProductRepositoryImpl{db: pg.DB}
}

var validSortFields = map[string]bool{
	"title":          true,
	"price":          true,
	"created_at":     true,
	"stock_quantity": true,
}

func (r *ProductRepositoryImpl) List(ctx context.Context, f ListFilter) ([]Product, int, error) {
	var conds []string
	var args []interface{}

	conds = append(conds, "p.status = 'active'")

	if f.CategorySlug != "" {
		args = append(args, f.CategorySlug)
		conds = append(conds, fmt.Sprintf("c.slug = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(p.title ILIKE $%d OR p.description ILIKE $%d OR p.tags ILIKE $%d)", n, n, n))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		conds = append(conds, fmt.Sprintf("p.price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conds = append(conds, fmt.Sprintf("p.price <= $%d", len(args)))
	}
	if f.Featured {
		conds = append(conds, "p.featured = TRUE")
	}

	where := strings.Join(conds, " AND ")

	var total int
	countQuery := `SELECT COUNT(p.id) FROM products p LEFT JOIN categories c ON p.category_id = c.id WHERE ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortBy := f.SortBy
	if !validSortFields[sortBy] {
		sortBy = "created_at"
	}
	sortOrder := strings.ToUpper(f.SortOrder)
	if sortOrder != "ASC" && sortOrder != "DESC" {
		sortOrder = "DESC"
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 12
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}

	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE %s
		ORDER BY p.%s %s
		LIMIT $%d OFFSET $%d`,
		productColumns, where, sortBy, sortOrder, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

const productColumns = `
	p.id, p.title, p.slug, COALESCE(p.description, ''), COALESCE(p.short_description, ''),
	p.price, p.compare_price, p.category_id, COALESCE(c.name, ''), COALESCE(c.slug, ''),
	COALESCE(p.sku, ''), p.stock_quantity, p.weight, COALESCE(p.dimensions, ''),
	p.status, p.featured, COALESCE(p.tags, ''), COALESCE(p.meta_title, ''),
	COALESCE(p.meta_description, ''), p.created_at, p.updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.ShortDescription,
		&p.Price, &p.ComparePrice, &p.CategoryID, &p.CategoryName, &p.CategorySlug,
		&p.SKU, &p.StockQuantity, &p.Weight, &p.Dimensions,
		&p.Status, &p.Featured, &p.Tags, &p.MetaTitle,
		&p.MetaDescription, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepositoryImpl) Get(ctx context.Context, id int) (*Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1`
	return scanProduct(r.db.QueryRowContext(ctx, query, id))
}

func (r *ProductRepositoryImpl) Insert(ctx context.Context, p *Product) (int, error) {
	if p.Slug == "" {
		p.Slug = utils.Slugify(p.Title)
	}
	if p.Status == "" {
		p.Status = "active"
	}
	if p.MetaTitle == "" {
		p.MetaTitle = p.Title
	}
	if p.MetaDescription == "" {
		p.MetaDescription = p.Description
	}

	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (
			title, slug, description, short_description, price, compare_price,
			category_id, sku, stock_quantity, weight, dimensions, tags,
			meta_title, meta_description, status, featured
		) VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''), $9, $10,
			NULLIF($11, ''), NULLIF($12, ''), $13, $14, $15, $16)
		RETURNING id`,
		p.Title, p.Slug, p.Description, p.ShortDescription, p.Price, p.ComparePrice,
		p.CategoryID, p.SKU, p.StockQuantity, p.Weight, p.Dimensions, p.Tags,
		p.MetaTitle, p.MetaDescription, p.Status, p.Featured).Scan(&id)
	if err != nil {
		return 0, err
	}
	p.ID = id
	return id, nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET title = $1, description = $2, short_description = NULLIF($3, ''),
		    price = $4, compare_price = $5, category_id = $6, sku = NULLIF($7, ''),
		    stock_quantity = $8, weight = $9, dimensions = NULLIF($10, ''),
		    tags = NULLIF($11, ''), meta_title = NULLIF($12, ''),
		    meta_description = NULLIF($13, ''), status = $14, featured = $15,
		    updated_at = NOW()
		WHERE id = $16`,
		p.Title, p.Description, p.ShortDescription, p.Price, p.ComparePrice,
		p.CategoryID, p.SKU, p.StockQuantity, p.Weight, p.Dimensions, p.Tags,
		p.MetaTitle, p.MetaDescription, p.Status, p.Featured, p.ID)
	return err
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *ProductRepositoryImpl) ExistsByTitleOrSKU(ctx context.Context, title, sku string) (bool, error) {
	var query string
	var args []interface{}
	if sku != "" {
		query = `SELECT EXISTS(SELECT 1 FROM products WHERE title = $1 OR sku = $2)`
		args = []interface{}{title, sku}
	} else {
		query = `SELECT EXISTS(SELECT 1 FROM products WHERE title = $1)`
		args = []interface{}{title}
	}

	var exists bool
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists)
	return exists, err
}
