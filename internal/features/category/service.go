package category

import (
	"context"
	"fmt"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, c *Category) (int, error)
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id int) error
}

type CategoryServiceImpl struct {
	Repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) CategoryService {
	return &CategoryServiceImpl{Repo: repo}
}

func (s *CategoryServiceImpl) ListCategories(ctx context.Context) ([]Category, error) {
	return s.Repo.ListWithCounts(ctx)
}

func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, c *Category) (int, error) {
	if c.Name == "" {
		return 0, fmt.Errorf("category name is required")
	}
	return s.Repo.Create(ctx, c)
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, c *Category) error {
	if c.Name == "" {
		return fmt.Errorf("category name is required")
	}
	return s.Repo.Update(ctx, c)
}

func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
