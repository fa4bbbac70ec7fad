package application

import (
	"context"
	"strings"

	"creditsmart/internal/models"
)

// Filters holds the review-view controls. Field filters are ANDed;
// the free-text Query is ORed across name, type, email and identifier.
// An empty value leaves that predicate vacuously true.
type Filters struct {
	Email      string
	CreditType string
	MinAmount  *float64
	MaxAmount  *float64
	Status     string
	Query      string
}

// SearchApplications fetches the full set and scans it in memory, the
// same derivation the view performs on every filter change. Ordering
// is whatever the store returned, which is newest-first.
func (s *service) SearchApplications(ctx context.Context, filters Filters) ([]models.CreditApplication, error) {
	apps, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.CreditApplication, 0, len(apps))
	for _, app := range apps {
		if Matches(app, filters) {
			matched = append(matched, app)
		}
	}
	return matched, nil
}

// Matches reports whether an application satisfies every active filter.
func Matches(app models.CreditApplication, filters Filters) bool {
	if filters.Email != "" &&
		!strings.Contains(strings.ToLower(app.Email), strings.ToLower(filters.Email)) {
		return false
	}
	if filters.CreditType != "" && app.CreditType != filters.CreditType {
		return false
	}
	if filters.MinAmount != nil && app.Amount < *filters.MinAmount {
		return false
	}
	if filters.MaxAmount != nil && app.Amount > *filters.MaxAmount {
		return false
	}
	if filters.Status != "" && app.Status != filters.Status {
		return false
	}
	return matchesQuery(app, filters.Query)
}

// matchesQuery ORs the free-text query across its target fields: a
// record matches if any one of them contains the query.
func matchesQuery(app models.CreditApplication, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{app.FullName, app.CreditType, app.Email, app.NationalID} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
