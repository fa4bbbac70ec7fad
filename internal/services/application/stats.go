package application

import (
	"context"
	"sort"

	"creditsmart/internal/models"
)

// GetStats aggregates the full application set. The figures are
// deliberately independent of any active filter selection.
func (s *service) GetStats(ctx context.Context) (*models.ApplicationStats, error) {
	apps, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(apps)
	return &stats, nil
}

// ComputeStats derives the summary figures and the distinct value
// lists the filter dropdowns are populated from. A blank status counts
// as pending, matching how unset records are displayed.
func ComputeStats(apps []models.CreditApplication) models.ApplicationStats {
	stats := models.ApplicationStats{
		TotalApplications: len(apps),
	}

	emails := make(map[string]struct{})
	types := make(map[string]struct{})
	statuses := make(map[string]struct{})

	for _, app := range apps {
		stats.TotalAmount += app.Amount

		status := app.Status
		if status == "" {
			status = models.StatusPending
		}
		switch status {
		case models.StatusPending:
			stats.PendingCount++
		case models.StatusApproved:
			stats.ApprovedCount++
		}
		statuses[status] = struct{}{}

		if app.Email != "" {
			emails[app.Email] = struct{}{}
		}
		if app.CreditType != "" {
			types[app.CreditType] = struct{}{}
		}
	}

	if len(apps) > 0 {
		stats.AverageAmount = stats.TotalAmount / float64(len(apps))
	}
	stats.UniqueApplicants = len(emails)
	stats.Emails = sortedKeys(emails)
	stats.CreditTypes = sortedKeys(types)
	stats.Statuses = sortedKeys(statuses)
	return stats
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
