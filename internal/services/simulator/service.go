// Package simulator implements the credit simulator view: a pure,
// re-derivable filter over the loaded catalog. Filtering is recomputed
// from scratch on every call; there is no incremental state.
package simulator

import (
	"context"
	"sort"
	"strings"

	"creditsmart/internal/models"
	"creditsmart/internal/repositories"
)

// Fallback slider bounds used when the catalog is empty.
const (
	defaultMinAmount   = 1_000_000
	defaultMaxAmount   = 500_000_000
	defaultMinInterest = 0
	defaultMaxInterest = 30
)

// Filters holds the simulator controls. Each numeric filter carries an
// explicit activation flag; the value is only consulted when the flag
// is set, so a genuine 0%-rate product is still filterable.
type Filters struct {
	Search         string
	Amount         float64
	AmountActive   bool
	MaxInterest    float64
	InterestActive bool
	SortByInterest bool
}

// Summary reports result counts and average rates. AverageRate covers
// the full loaded set; FilteredAverageRate covers the matches only.
type Summary struct {
	Total               int     `json:"total"`
	Showing             int     `json:"showing"`
	AverageRate         float64 `json:"averageRate"`
	FilteredAverageRate float64 `json:"filteredAverageRate"`
}

// Result is the simulator view state for one filter selection.
type Result struct {
	Products []models.CreditProduct `json:"products"`
	Bounds   models.ProductBounds   `json:"bounds"`
	Summary  Summary                `json:"summary"`
}

type Service interface {
	Simulate(ctx context.Context, filters Filters) (*Result, error)
}

type service struct {
	repo repositories.CreditRepository
}

func NewService(repo repositories.CreditRepository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Simulate(ctx context.Context, filters Filters) (*Result, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := Apply(products, filters)
	return &Result{
		Products: filtered,
		Bounds:   Bounds(products),
		Summary: Summary{
			Total:               len(products),
			Showing:             len(filtered),
			AverageRate:         averageRate(products),
			FilteredAverageRate: averageRate(filtered),
		},
	}, nil
}

// Apply returns the subset of products satisfying all active filters,
// optionally sorted ascending by interest rate. The sort is stable so
// equal-rate products keep their catalog order.
func Apply(products []models.CreditProduct, filters Filters) []models.CreditProduct {
	search := strings.ToLower(filters.Search)

	matched := make([]models.CreditProduct, 0, len(products))
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		// The amount filter is a desired loan amount: a product
		// qualifies if that amount is obtainable from it.
		if filters.AmountActive && (filters.Amount < p.MinAmount || filters.Amount > p.MaxAmount) {
			continue
		}
		if filters.InterestActive && p.InterestRate > filters.MaxInterest {
			continue
		}
		matched = append(matched, p)
	}

	if filters.SortByInterest {
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].InterestRate < matched[j].InterestRate
		})
	}
	return matched
}

// Bounds derives the slider limits from the loaded set. They are
// recomputed whenever the set changes, not fixed constants.
func Bounds(products []models.CreditProduct) models.ProductBounds {
	if len(products) == 0 {
		return models.ProductBounds{
			MinAmount:   defaultMinAmount,
			MaxAmount:   defaultMaxAmount,
			MinInterest: defaultMinInterest,
			MaxInterest: defaultMaxInterest,
		}
	}

	b := models.ProductBounds{
		MinAmount:   products[0].MinAmount,
		MaxAmount:   products[0].MaxAmount,
		MinInterest: products[0].InterestRate,
		MaxInterest: products[0].InterestRate,
	}
	for _, p := range products[1:] {
		if p.MinAmount < b.MinAmount {
			b.MinAmount = p.MinAmount
		}
		if p.MaxAmount > b.MaxAmount {
			b.MaxAmount = p.MaxAmount
		}
		if p.InterestRate < b.MinInterest {
			b.MinInterest = p.InterestRate
		}
		if p.InterestRate > b.MaxInterest {
			b.MaxInterest = p.InterestRate
		}
	}
	return b
}

func averageRate(products []models.CreditProduct) float64 {
	if len(products) == 0 {
		return 0
	}
	var sum float64
	for _, p := range products {
		sum += p.InterestRate
	}
	return sum / float64(len(products))
}
