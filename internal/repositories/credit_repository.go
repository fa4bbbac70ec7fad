package repositories

import (
	"context"
	"errors"

	"creditsmart/internal/models"
)

var (
	ErrProductNotFound = errors.New("credit product not found")
)

// CreditRepository is the data access interface for the credits collection.
type CreditRepository interface {
	// Core operations
	Create(ctx context.Context, product *models.CreditProduct) error
	GetAll(ctx context.Context) ([]models.CreditProduct, error)
	GetByID(ctx context.Context, id uint) (*models.CreditProduct, error)

	// Query operations
	GetByName(ctx context.Context, name string) (*models.CreditProduct, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*models.CreditProduct, error)
}
