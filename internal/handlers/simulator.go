package handlers

import (
	"strconv"

	"creditsmart/internal/services/simulator"
	"creditsmart/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type SimulatorHandler struct {
	simulatorService simulator.Service
}

func NewSimulatorHandler(simulatorService simulator.Service) *SimulatorHandler {
	return &SimulatorHandler{
		simulatorService: simulatorService,
	}
}

// Simulate runs the catalog filters. A numeric filter is active only
// when its query parameter is present, so no catalog value doubles as
// a "filter disabled" sentinel.
func (h *SimulatorHandler) Simulate(c *fiber.Ctx) error {
	filters := simulator.Filters{
		Search:         c.Query("search"),
		SortByInterest: c.QueryBool("sort"),
	}

	if raw := c.Query("amount"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount <= 0 {
			return response.BadRequest(c, "Invalid amount filter")
		}
		filters.Amount = amount
		filters.AmountActive = true
	}

	if raw := c.Query("maxRate"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate < 0 {
			return response.BadRequest(c, "Invalid maxRate filter")
		}
		filters.MaxInterest = rate
		filters.InterestActive = true
	}

	result, err := h.simulatorService.Simulate(c.Context(), filters)
	if err != nil {
		return response.ServerError(c, "Failed to load credit products")
	}
	return response.Success(c, "Simulation results", result)
}
