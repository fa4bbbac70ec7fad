package handlers

import (
	"errors"

	domainerr "creditsmart/internal/errors"
	"creditsmart/internal/models"
	"creditsmart/internal/services/catalog"
	"creditsmart/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalogService catalog.Service
}

func NewCatalogHandler(catalogService catalog.Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.catalogService.ListProducts(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to load credit products")
	}
	return response.Success(c, "Credit products retrieved successfully", products)
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid product ID")
	}

	product, err := h.catalogService.GetProduct(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domainerr.ErrProductNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.ServerError(c, "Failed to load credit product")
	}
	return response.Success(c, "Credit product retrieved successfully", product)
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var input models.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	product, replayed, err := h.catalogService.CreateProduct(c.Context(), input)
	if err != nil {
		var verr *domainerr.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationError(c, verr.Fields)
		}
		return response.ServerError(c, "Failed to save credit product")
	}

	if replayed {
		return response.Success(c, "Credit product already registered", product)
	}
	return response.Created(c, "Credit product created successfully", product)
}
