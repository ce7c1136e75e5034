package product

import (
	"context"
	"fmt"
)

type ProductService interface {
	ListProducts(ctx context.Context, f ListFilter) ([]Product, int, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
	CreateProduct(ctx context.Context, p *Product) (int, error)
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id int) error
}

type ProductServiceImpl struct {
	Repo ProductRepository
}

func NewProductService(repo ProductRepository) ProductService {
	return &ProductServiceImpl{Repo: repo}
}

func (s *ProductServiceImpl) ListProducts(ctx context.Context, f ListFilter) ([]Product, int, error) {
	return s.Repo.List(ctx, f)
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, id int) (*Product, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ProductServiceImpl) CreateProduct(ctx context.Context, p *Product) (int, error) {
	if p.Title == "" || p.Description == "" || p.Price <= 0 {
		return 0, fmt.Errorf("title, description and a positive price are required")
	}
	return s.Repo.Insert(ctx, p)
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, p *Product) error {
	if p.Title == "" || p.Description == "" || p.Price <= 0 {
		return fmt.Errorf("title, description and a positive price are required")
	}
	return s.Repo.Update(ctx, p)
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
