package handlers

import (
	"errors"
	"strconv"

	domainerr "creditsmart/internal/errors"
	"creditsmart/internal/models"
	"creditsmart/internal/repositories"
	"creditsmart/internal/services/application"
	"creditsmart/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	applicationService application.Service
}

func NewApplicationHandler(applicationService application.Service) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	var input models.SubmitApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	app, replayed, err := h.applicationService.Submit(c.Context(), input)
	if err != nil {
		var verr *domainerr.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationError(c, verr.Fields)
		}
		if errors.Is(err, domainerr.ErrUnknownCreditType) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, "Failed to save application")
	}

	if replayed {
		return response.Success(c, "Application already submitted", app)
	}
	return response.Created(c, "Application submitted successfully", app)
}

// QuoteRequest is the payment-preview payload: the three inputs the
// preview reacts to.
type QuoteRequest struct {
	CreditType string  `json:"creditType"`
	Amount     float64 `json:"amount"`
	Term       int     `json:"term"`
}

func (h *ApplicationHandler) GetQuote(c *fiber.Ctx) error {
	var req QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	quote, err := h.applicationService.GetQuote(c.Context(), req.CreditType, req.Amount, req.Term)
	if err != nil {
		if errors.Is(err, domainerr.ErrUnknownCreditType) ||
			errors.Is(err, domainerr.ErrInvalidAmount) ||
			errors.Is(err, domainerr.ErrInvalidTerm) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, "Failed to compute quote")
	}
	return response.Success(c, "Quote computed successfully", quote)
}

// List returns applications newest-first. Exact-match and range
// parameters are pushed down to the store; with no parameters the full
// set is returned.
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	filters := repositories.ApplicationSearchFilters{
		Email:      c.Query("email"),
		CreditType: c.Query("creditType"),
		Status:     c.Query("status"),
	}
	hasRange := false

	if raw := c.Query("minAmount"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "Invalid minAmount filter")
		}
		filters.MinAmount = &min
		hasRange = true
	}
	if raw := c.Query("maxAmount"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "Invalid maxAmount filter")
		}
		filters.MaxAmount = &max
		hasRange = true
	}

	var (
		apps []models.CreditApplication
		err  error
	)
	switch {
	case filters.Email != "" && filters.CreditType == "" && filters.Status == "" && !hasRange:
		apps, err = h.applicationService.ListByEmail(c.Context(), filters.Email)
	case filters.Email != "" || filters.CreditType != "" || filters.Status != "" || hasRange:
		apps, err = h.applicationService.QueryApplications(c.Context(), filters)
	default:
		apps, err = h.applicationService.ListApplications(c.Context())
	}
	if err != nil {
		return response.ServerError(c, "Failed to load applications")
	}
	return response.Success(c, "Applications retrieved successfully", apps)
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid application ID")
	}

	app, err := h.applicationService.GetApplication(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domainerr.ErrApplicationNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.ServerError(c, "Failed to load application")
	}
	return response.Success(c, "Application retrieved successfully", app)
}

func (h *ApplicationHandler) Search(c *fiber.Ctx) error {
	filters := application.Filters{
		Email:      c.Query("email"),
		CreditType: c.Query("creditType"),
		Status:     c.Query("status"),
		Query:      c.Query("q"),
	}

	if raw := c.Query("minAmount"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "Invalid minAmount filter")
		}
		filters.MinAmount = &min
	}
	if raw := c.Query("maxAmount"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "Invalid maxAmount filter")
		}
		filters.MaxAmount = &max
	}

	apps, err := h.applicationService.SearchApplications(c.Context(), filters)
	if err != nil {
		return response.ServerError(c, "Failed to search applications")
	}
	return response.Success(c, "Applications retrieved successfully", apps)
}

func (h *ApplicationHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.applicationService.GetStats(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to compute statistics")
	}
	return response.Success(c, "Statistics computed successfully", stats)
}
