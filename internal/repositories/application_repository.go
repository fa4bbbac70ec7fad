package repositories

import (
	"context"
	"errors"

	"creditsmart/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
)

// ApplicationSearchFilters mirrors the store's predicate surface:
// equality on email, credit type and status, range comparisons on
// amount. Nil range bounds mean the bound is not applied.
type ApplicationSearchFilters struct {
	Email      string
	CreditType string
	MinAmount  *float64
	MaxAmount  *float64
	Status     string
}

// ApplicationRepository is the data access interface for the
// applications collection. Every listing query returns records
// newest-first; the views rely on that ordering.
type ApplicationRepository interface {
	// Core operations
	Create(ctx context.Context, app *models.CreditApplication) error
	GetAll(ctx context.Context) ([]models.CreditApplication, error)
	GetByID(ctx context.Context, id uint) (*models.CreditApplication, error)

	// Query operations
	GetByEmail(ctx context.Context, email string) ([]models.CreditApplication, error)
	Search(ctx context.Context, filters ApplicationSearchFilters) ([]models.CreditApplication, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*models.CreditApplication, error)
}
