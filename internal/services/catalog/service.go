// Package catalog serves the credit product listing and the product
// registration form.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainerr "creditsmart/internal/errors"
	"creditsmart/internal/models"
	"creditsmart/internal/repositories"
	"creditsmart/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service exposes the catalog view operations.
type Service interface {
	ListProducts(ctx context.Context) ([]models.CreditProduct, error)
	GetProduct(ctx context.Context, id uint) (*models.CreditProduct, error)
	CreateProduct(ctx context.Context, input models.CreateProductInput) (*models.CreditProduct, bool, error)
}

type service struct {
	repo repositories.CreditRepository
	log  *logrus.Logger
}

func NewService(repo repositories.CreditRepository, log *logrus.Logger) Service {
	return &service{
		repo: repo,
		log:  log,
	}
}

func (s *service) ListProducts(ctx context.Context) ([]models.CreditProduct, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetProduct(ctx context.Context, id uint) (*models.CreditProduct, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == repositories.ErrProductNotFound {
			return nil, domainerr.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// CreateProduct validates and stores a new catalog entry. The second
// return value reports whether the record already existed: a resubmit
// carrying the same idempotency key returns the stored product instead
// of inserting a twin.
func (s *service) CreateProduct(ctx context.Context, input models.CreateProductInput) (*models.CreditProduct, bool, error) {
	if err := validateProduct(input); err != nil {
		return nil, false, err
	}

	key := input.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	} else if existing, err := s.repo.GetByIdempotencyKey(ctx, key); err == nil {
		return existing, true, nil
	}

	image := strings.TrimSpace(input.Image)
	if image == "" {
		image = models.DefaultProductImage
	}

	now := time.Now()
	product := &models.CreditProduct{
		Name:           strings.TrimSpace(input.Name),
		Description:    strings.TrimSpace(input.Description),
		MinAmount:      input.MinAmount,
		MaxAmount:      input.MaxAmount,
		InterestRate:   input.InterestRate,
		MaxTerm:        input.MaxTerm,
		Requirements:   strings.TrimSpace(input.Requirements),
		Image:          image,
		IsActive:       true,
		IdempotencyKey: key,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, false, fmt.Errorf("failed to create credit product: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"product": product.Name,
		"rate":    product.InterestRate,
	}).Info("credit product created")
	return product, false, nil
}

func validateProduct(input models.CreateProductInput) error {
	v := validation.New()
	v.Required("name", input.Name)
	v.Required("description", input.Description)
	v.Required("requirements", input.Requirements)
	v.Positive("minAmount", input.MinAmount)
	v.Positive("maxAmount", input.MaxAmount)
	v.Check(input.MaxAmount > input.MinAmount, "maxAmount", "must be greater than minAmount")
	v.Positive("interestRate", input.InterestRate)
	v.Check(input.MaxTerm > 0, "maxTerm", "must be greater than 0")

	if !v.Valid() {
		return &domainerr.ValidationError{Fields: v.Errors}
	}
	return nil
}
