package repositories

import (
	"context"
	"fmt"

	"creditsmart/internal/models"

	"gorm.io/gorm"
)

type creditRepository struct {
	db *gorm.DB
}

func NewCreditRepository(db *gorm.DB) CreditRepository {
	return &creditRepository{
		db: db,
	}
}

func (r *creditRepository) Create(ctx context.Context, product *models.CreditProduct) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *creditRepository) GetAll(ctx context.Context) ([]models.CreditProduct, error) {
	var products []models.CreditProduct
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get credit products: %w", err)
	}
	return products, nil
}

func (r *creditRepository) GetByID(ctx context.Context, id uint) (*models.CreditProduct, error) {
	var product models.CreditProduct
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get credit product: %w", err)
	}
	return &product, nil
}

func (r *creditRepository) GetByName(ctx context.Context, name string) (*models.CreditProduct, error) {
	var product models.CreditProduct
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get credit product by name: %w", err)
	}
	return &product, nil
}

func (r *creditRepository) GetByIdempotencyKey(ctx context.Context, key string) (*models.CreditProduct, error) {
	var product models.CreditProduct
	if err := r.db.WithContext(ctx).Where("idempotency_key = ?", key).First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get credit product by key: %w", err)
	}
	return &product, nil
}
