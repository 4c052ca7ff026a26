package service

import (
	"context"

	"medicare-backend/internal/domain"
	"medicare-backend/internal/repository"
)

const defaultProductLimit = 20

type CatalogServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func CreateCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) CatalogService {
	return &CatalogServiceImpl{productRepo: productRepo, categoryRepo: categoryRepo}
}

func (s *CatalogServiceImpl) GetProducts(ctx context.Context, category string, limit int64) ([]domain.Product, error) {
	if limit <= 0 {
		limit = defaultProductLimit
	}
	return s.productRepo.Find(ctx, category, limit)
}

func (s *CatalogServiceImpl) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *CatalogServiceImpl) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}
