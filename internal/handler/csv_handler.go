package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"compliance-tracker/internal/middleware"
	"compliance-tracker/internal/service/csvio"
)

type CSVHandler struct {
	csvService csvio.Service
}

func NewCSVHandler(csvService csvio.Service) *CSVHandler {
	return &CSVHandler{csvService: csvService}
}

func (h *CSVHandler) Export(c *fiber.Ctx) error {
	filename, data, err := h.csvService.ExportUpdates(c.Context())
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

func (h *CSVHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("A CSV file upload named 'file' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Failed to open uploaded file")
	}
	defer file.Close()

	result, err := h.csvService.ImportUpdates(c.Context(), file)
	if err != nil {
		return middleware.BadRequest(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
