package category

import (
	"context"
	"database/sql"
	"time"

	"go-frameshop/internal/database"
	"go-frameshop/pkg/utils"

	"github.com/lib/pq"
)

type Category struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	Status       string    `json:"status"`
	SortOrder    int       `json:"sort_order"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CategoryRepository interface {
	ListWithCounts(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id int) (*Category, error)
	Create(ctx context.Context, c *Category) (int, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int) error
	// FindOrCreate resolves a free-text category name to an id, creating the
	// category when no case-insensitive name or slug match exists. Creation is
	// an upsert by slug: losing a concurrent create falls back to the winner.
	FindOrCreate(ctx context.Context, name string) (int, error)
}

type CategoryRepositoryImpl struct {
	db *sql.DB
}

func NewCategoryRepository(pg *database.PostgresDB) CategoryRepository {
	return &CategoryRepositoryImpl{db: pg.DB}
}

func (r *CategoryRepositoryImpl) ListWithCounts(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.slug, COALESCE(c.description, ''), COALESCE(c.image_url, ''),
		       c.status, c.sort_order, COUNT(p.id), c.created_at, c.updated_at
		FROM categories c
		LEFT JOIN products p ON c.id = p.category_id AND p.status = 'active'
		WHERE c.status = 'active'
		GROUP BY c.id
		ORDER BY c.sort_order ASC, c.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL,
			&c.Status, &c.SortOrder, &c.ProductCount, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepositoryImpl) Get(ctx context.Context, id int) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, slug, COALESCE(description, ''), COALESCE(image_url, ''),
		       status, sort_order, created_at, updated_at
		FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL, &c.Status,
			&c.SortOrder, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, c *Category) (int, error) {
	if c.Slug == "" {
		c.Slug = utils.Slugify(c.Name)
	}
	if c.Status == "" {
		c.Status = "active"
	}

	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, slug, description, image_url, sort_order, status)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6)
		RETURNING id`,
		c.Name, c.Slug, c.Description, c.ImageURL, c.SortOrder, c.Status).Scan(&id)
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, c *Category) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE categories
		SET name = $1, description = NULLIF($2, ''), image_url = NULLIF($3, ''),
		    sort_order = $4, status = $5, updated_at = NOW()
		WHERE id = $6`,
		c.Name, c.Description, c.ImageURL, c.SortOrder, c.Status, c.ID)
	return err
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}

func (r *CategoryRepositoryImpl) FindOrCreate(ctx context.Context, name string) (int, error) {
	slug := utils.Slugify(name)

	var id int
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM categories WHERE LOWER(name) = LOWER($1) OR slug = $2`,
		name, slug).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	err = r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, slug, status)
		VALUES ($1, $2, 'active')
		ON CONFLICT (slug) DO NOTHING
		RETURNING id`, name, slug).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows && !isUniqueViolation(err) {
		return 0, err
	}

	// A concurrent ingestion created the category first; use its row.
	err = r.db.QueryRowContext(ctx,
		`SELECT id FROM categories WHERE slug = $1`, slug).Scan(&id)
	return id, err
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
