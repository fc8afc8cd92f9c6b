package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"dashmart.backend/internal/domain/entities"
	"dashmart.backend/internal/domain/repositories"
	"dashmart.backend/pkg/utils"
)

// ProductUsecase handles catalog management
type ProductUsecase struct {
	productRepo repositories.ProductRepository
	vendorRepo  repositories.VendorRepository
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(productRepo repositories.ProductRepository, vendorRepo repositories.VendorRepository) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		vendorRepo:  vendorRepo,
	}
}

// CreateProduct creates a product under an existing vendor
func (u *ProductUsecase) CreateProduct(ctx context.Context, input *entities.CreateProductInput) (*entities.Product, error) {
	if _, err := u.vendorRepo.GetByID(ctx, input.VendorID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entities.Product{
		ID:          uuid.New(),
		VendorID:    input.VendorID,
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		Stock:       input.Stock,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct gets a product by id
func (u *ProductUsecase) GetProduct(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

// ListProducts lists products with search and pagination
func (u *ProductUsecase) ListProducts(ctx context.Context, search string, page, limit int) ([]*entities.Product, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	products, total, err := u.productRepo.List(ctx, search, params.CalculateOffset(), params.Limit)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return products, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// UpdateProduct applies a partial update
func (u *ProductUsecase) UpdateProduct(ctx context.Context, id uuid.UUID, input *entities.UpdateProductInput) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.PriceCents != nil {
		product.PriceCents = *input.PriceCents
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product
func (u *ProductUsecase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return u.productRepo.Delete(ctx, id)
}
