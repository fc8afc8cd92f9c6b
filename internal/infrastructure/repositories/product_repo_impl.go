package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"dashmart.backend/internal/domain/entities"
	domainerrors "dashmart.backend/internal/domain/errors"
	"dashmart.backend/internal/infrastructure/models"
)

// ProductRepository implements product data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	m := &models.Product{
		ID:          product.ID,
		VendorID:    product.VendorID,
		Name:        product.Name,
		Description: product.Description,
		PriceCents:  product.PriceCents,
		Stock:       product.Stock,
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return r.toEntity(&m), nil
}

// List lists products with optional name search and pagination
func (r *ProductRepository) List(ctx context.Context, search string, offset, limit int) ([]*entities.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, storageErr(err)
	}

	query = query.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var productModels []models.Product
	if err := query.Find(&productModels).Error; err != nil {
		return nil, 0, storageErr(err)
	}

	products := make([]*entities.Product, 0, len(productModels))
	for _, m := range productModels {
		model := m
		products = append(products, r.toEntity(&model))
	}
	return products, total, nil
}

// Update updates a product
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	updates := map[string]interface{}{
		"name":        product.Name,
		"description": product.Description,
		"price_cents": product.PriceCents,
		"stock":       product.Stock,
		"is_active":   product.IsActive,
		"updated_at":  time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", product.ID).Updates(updates)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a product
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) toEntity(m *models.Product) *entities.Product {
	return &entities.Product{
		ID:          m.ID,
		VendorID:    m.VendorID,
		Name:        m.Name,
		Description: m.Description,
		PriceCents:  m.PriceCents,
		Stock:       m.Stock,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
