package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/middleware"
	"compliance-tracker/internal/service/regulation"
	"compliance-tracker/internal/validate"
)

type RegulationHandler struct {
	regulationService regulation.Service
	validator         *validate.Validator
}

func NewRegulationHandler(regulationService regulation.Service, validator *validate.Validator) *RegulationHandler {
	return &RegulationHandler{
		regulationService: regulationService,
		validator:         validator,
	}
}

func (h *RegulationHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.regulationService.List(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *RegulationHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("regulationId"))
	if err != nil {
		return middleware.BadRequest("Invalid regulation ID")
	}

	reg, err := h.regulationService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(reg)
}

// Locations exposes the jurisdiction hierarchy used by browse filters.
func (h *RegulationHandler) Locations(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"levels": fiber.Map{
			string(domain.JurisdictionNational): domain.LocationsForLevel(domain.JurisdictionNational),
			string(domain.JurisdictionState):    domain.LocationsForLevel(domain.JurisdictionState),
			string(domain.JurisdictionLocal):    domain.LocationsForLevel(domain.JurisdictionLocal),
		},
		"categories":        domain.Categories,
		"compliance_levels": domain.ComplianceLevels,
	})
}

func (h *RegulationHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateRegulationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Title == "" || input.Location == "" {
		return middleware.BadRequest("Title and location are required")
	}

	reg, err := h.regulationService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(reg)
}

func (h *RegulationHandler) Edit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("regulationId"))
	if err != nil {
		return middleware.BadRequest("Invalid regulation ID")
	}

	var input domain.EditRegulationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	reg, err := h.regulationService.Edit(c.Context(), id, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(reg)
}

func (h *RegulationHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("regulationId"))
	if err != nil {
		return middleware.BadRequest("Invalid regulation ID")
	}

	if err := h.regulationService.Delete(c.Context(), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Regulation deleted"})
}
