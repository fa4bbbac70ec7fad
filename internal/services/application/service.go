// Package application handles credit application submission and the
// review view over submitted applications.
package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainerr "creditsmart/internal/errors"
	"creditsmart/internal/models"
	"creditsmart/internal/repositories"
	"creditsmart/internal/services/amortization"
	"creditsmart/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Quote is the reactive payment preview shown while the form is being
// filled: any change to amount, term or product recomputes it in full.
type Quote struct {
	MonthlyPayment float64               `json:"monthlyPayment"`
	Product        *models.CreditProduct `json:"product"`
}

type Service interface {
	Submit(ctx context.Context, input models.SubmitApplicationInput) (*models.CreditApplication, bool, error)
	GetQuote(ctx context.Context, creditType string, amount float64, termMonths int) (*Quote, error)
	GetApplication(ctx context.Context, id uint) (*models.CreditApplication, error)
	ListApplications(ctx context.Context) ([]models.CreditApplication, error)
	ListByEmail(ctx context.Context, email string) ([]models.CreditApplication, error)
	QueryApplications(ctx context.Context, filters repositories.ApplicationSearchFilters) ([]models.CreditApplication, error)
	SearchApplications(ctx context.Context, filters Filters) ([]models.CreditApplication, error)
	GetStats(ctx context.Context) (*models.ApplicationStats, error)
}

type service struct {
	repo       repositories.ApplicationRepository
	creditRepo repositories.CreditRepository
	log        *logrus.Logger
}

func NewService(repo repositories.ApplicationRepository, creditRepo repositories.CreditRepository, log *logrus.Logger) Service {
	return &service{
		repo:       repo,
		creditRepo: creditRepo,
		log:        log,
	}
}

// Submit validates the form, prices the loan and persists the
// application. The second return value reports an idempotent replay:
// a resubmission carrying an already-stored key returns the original
// record instead of creating a duplicate.
func (s *service) Submit(ctx context.Context, input models.SubmitApplicationInput) (*models.CreditApplication, bool, error) {
	if err := validateForm(input); err != nil {
		return nil, false, err
	}

	product, err := s.creditRepo.GetByName(ctx, input.CreditType)
	if err != nil {
		if err == repositories.ErrProductNotFound {
			return nil, false, domainerr.ErrUnknownCreditType
		}
		return nil, false, err
	}

	if input.Amount < product.MinAmount || input.Amount > product.MaxAmount {
		v := validation.New()
		v.Range("amount", input.Amount, product.MinAmount, product.MaxAmount)
		return nil, false, &domainerr.ValidationError{Fields: v.Errors}
	}

	key := input.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	} else if existing, err := s.repo.GetByIdempotencyKey(ctx, key); err == nil {
		return existing, true, nil
	}

	payment, err := amortization.MonthlyPayment(input.Amount, product.InterestRate, input.TermMonths)
	if err != nil {
		return nil, false, fmt.Errorf("failed to compute monthly payment: %w", err)
	}

	app := &models.CreditApplication{
		FullName:       strings.TrimSpace(input.FullName),
		NationalID:     input.NationalID,
		Email:          strings.TrimSpace(input.Email),
		Phone:          input.Phone,
		Company:        strings.TrimSpace(input.Company),
		Position:       strings.TrimSpace(input.Position),
		MonthlyIncome:  input.MonthlyIncome,
		CreditType:     product.Name,
		Amount:         input.Amount,
		TermMonths:     input.TermMonths,
		Purpose:        strings.TrimSpace(input.Purpose),
		MonthlyPayment: amortization.Round2(payment),
		Status:         models.StatusPending,
		IdempotencyKey: key,
		Date:           time.Now(),
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, false, fmt.Errorf("failed to create application: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"email":      app.Email,
		"creditType": app.CreditType,
		"amount":     app.Amount,
	}).Info("application submitted")
	return app, false, nil
}

// GetQuote recomputes the monthly payment for the current form state.
func (s *service) GetQuote(ctx context.Context, creditType string, amount float64, termMonths int) (*Quote, error) {
	product, err := s.creditRepo.GetByName(ctx, creditType)
	if err != nil {
		if err == repositories.ErrProductNotFound {
			return nil, domainerr.ErrUnknownCreditType
		}
		return nil, err
	}

	payment, err := amortization.MonthlyPayment(amount, product.InterestRate, termMonths)
	if err != nil {
		switch err {
		case amortization.ErrInvalidPrincipal:
			return nil, domainerr.ErrInvalidAmount
		case amortization.ErrInvalidTerm:
			return nil, domainerr.ErrInvalidTerm
		}
		return nil, err
	}

	return &Quote{
		MonthlyPayment: amortization.Round2(payment),
		Product:        product,
	}, nil
}

func (s *service) GetApplication(ctx context.Context, id uint) (*models.CreditApplication, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, domainerr.ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

func (s *service) ListApplications(ctx context.Context) ([]models.CreditApplication, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) ListByEmail(ctx context.Context, email string) ([]models.CreditApplication, error) {
	return s.repo.GetByEmail(ctx, email)
}

// QueryApplications pushes exact-match and range predicates down to
// the store, unlike SearchApplications which scans the full set with
// the view's looser substring semantics.
func (s *service) QueryApplications(ctx context.Context, filters repositories.ApplicationSearchFilters) ([]models.CreditApplication, error) {
	return s.repo.Search(ctx, filters)
}

func validateForm(input models.SubmitApplicationInput) error {
	v := validation.New()
	v.Required("fullName", input.FullName)
	v.NationalID("id", input.NationalID)
	v.Email("email", input.Email)
	v.Phone("phone", input.Phone)
	v.Required("company", input.Company)
	v.Required("position", input.Position)
	v.Positive("monthlyIncome", input.MonthlyIncome)
	v.Required("creditType", input.CreditType)
	v.Positive("amount", input.Amount)
	v.OneOf("term", input.TermMonths, models.ApplicationTerms)

	if !v.Valid() {
		return &domainerr.ValidationError{Fields: v.Errors}
	}
	return nil
}
