package repositories

import (
	"context"
	"fmt"

	"creditsmart/internal/models"

	"gorm.io/gorm"
)

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{
		db: db,
	}
}

func (r *applicationRepository) Create(ctx context.Context, app *models.CreditApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepository) GetAll(ctx context.Context) ([]models.CreditApplication, error) {
	var apps []models.CreditApplication
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to get applications: %w", err)
	}
	return apps, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.CreditApplication, error) {
	var app models.CreditApplication
	if err := r.db.WithContext(ctx).First(&app, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

func (r *applicationRepository) GetByEmail(ctx context.Context, email string) ([]models.CreditApplication, error) {
	var apps []models.CreditApplication
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("date DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get applications by email: %w", err)
	}
	return apps, nil
}

func (r *applicationRepository) Search(ctx context.Context, filters ApplicationSearchFilters) ([]models.CreditApplication, error) {
	q := r.db.WithContext(ctx).Model(&models.CreditApplication{})

	if filters.Email != "" {
		q = q.Where("email = ?", filters.Email)
	}
	if filters.CreditType != "" {
		q = q.Where("credit_type = ?", filters.CreditType)
	}
	if filters.MinAmount != nil {
		q = q.Where("amount >= ?", *filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		q = q.Where("amount <= ?", *filters.MaxAmount)
	}
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}

	var apps []models.CreditApplication
	if err := q.Order("date DESC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to search applications: %w", err)
	}
	return apps, nil
}

func (r *applicationRepository) GetByIdempotencyKey(ctx context.Context, key string) (*models.CreditApplication, error) {
	var app models.CreditApplication
	if err := r.db.WithContext(ctx).Where("idempotency_key = ?", key).First(&app).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application by key: %w", err)
	}
	return &app, nil
}
