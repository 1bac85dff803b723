package services

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spicepatrao/storefront-backend/models"
	"github.com/spicepatrao/storefront-backend/repository"
)

// ListProductsParams are the storefront browse filters.
type ListProductsParams struct {
	Category models.Category
	Search   string
	Sort     string // featured | price-asc | price-desc | newest
}

// CatalogService wraps the product repository with browse filtering and
// admin CRUD validation.
type CatalogService struct {
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewCatalogService(products repository.ProductRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{products: products, logger: logger}
}

// ListProducts returns the catalog with the storefront's filter and
// sort options applied. "featured" keeps catalog order with top sellers
// first.
func (s *CatalogService) ListProducts(ctx context.Context, params ListProductsParams) ([]models.Product, error) {
	all, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Product, 0, len(all))
	search := strings.ToLower(strings.TrimSpace(params.Search))
	for _, p := range all {
		if params.Category != "" && p.Category != params.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.NameEn), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch params.Sort {
	case "price-asc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price100g < filtered[j].Price100g })
	case "price-desc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price100g > filtered[j].Price100g })
	case "newest":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].IsNew && !filtered[j].IsNew })
	default: // featured
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].IsTopSeller && !filtered[j].IsTopSeller })
	}

	return filtered, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *CatalogService) validate(p *models.Product) *ServiceError {
	if p.ID == "" || strings.TrimSpace(p.NameEn) == "" {
		return &ServiceError{StatusCode: 400, Message: "Product id and name are required"}
	}
	if !p.Category.Valid() {
		return &ServiceError{StatusCode: 400, Message: "Unknown product category"}
	}
	if p.Price100g < 0 || p.Price1kg < 0 {
		return &ServiceError{StatusCode: 400, Message: "Prices cannot be negative"}
	}
	return nil
}

// AddProduct prepends a new catalog entry. A duplicate id is rejected to
// keep the catalog's id-uniqueness invariant.
func (s *CatalogService) AddProduct(ctx context.Context, p *models.Product) *ServiceError {
	if svcErr := s.validate(p); svcErr != nil {
		return svcErr
	}
	if _, err := s.products.GetByID(ctx, p.ID); err == nil {
		return &ServiceError{StatusCode: 409, Message: "A product with this id already exists"}
	}

	if err := s.products.Create(ctx, p); err != nil {
		s.logger.Error("Failed to add product", zap.String("id", p.ID), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to add product"}
	}
	s.logger.Info("Product added", zap.String("id", p.ID), zap.String("name", p.NameEn))
	return nil
}

// UpdateProduct replaces the catalog entry with a matching id. Updating
// an unknown id reports not-found; the catalog is left unchanged either
// way.
func (s *CatalogService) UpdateProduct(ctx context.Context, p *models.Product) *ServiceError {
	if svcErr := s.validate(p); svcErr != nil {
		return svcErr
	}

	err := s.products.Update(ctx, p)
	if err == repository.ErrProductNotFound {
		return &ServiceError{StatusCode: 404, Message: "Product not found"}
	}
	if err != nil {
		s.logger.Error("Failed to update product", zap.String("id", p.ID), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to update product"}
	}
	return nil
}

// DeleteProduct removes the entry. Carts and orders that still reference
// the id are not touched; dangling references are skipped at read time.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) *ServiceError {
	err := s.products.Delete(ctx, id)
	if err == repository.ErrProductNotFound {
		return &ServiceError{StatusCode: 404, Message: "Product not found"}
	}
	if err != nil {
		s.logger.Error("Failed to delete product", zap.String("id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete product"}
	}
	s.logger.Info("Product deleted", zap.String("id", id))
	return nil
}
