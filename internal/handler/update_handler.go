package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/middleware"
	"compliance-tracker/internal/service/notification"
	"compliance-tracker/internal/service/update"
	"compliance-tracker/internal/validate"
)

type UpdateHandler struct {
	updateService update.Service
	notifService  notification.Service
	validator     *validate.Validator
}

func NewUpdateHandler(updateService update.Service, notifService notification.Service, validator *validate.Validator) *UpdateHandler {
	return &UpdateHandler{
		updateService: updateService,
		notifService:  notifService,
		validator:     validator,
	}
}

func updateQueryFromCtx(c *fiber.Ctx) validate.UpdateQuery {
	return validate.UpdateQuery{
		Status:         c.Query("status"),
		Category:       c.Query("category"),
		Jurisdiction:   c.Query("jurisdiction"),
		ImpactLevel:    c.Query("impact_level"),
		Priority:       c.Query("priority"),
		DecisionStatus: c.Query("decision_status"),
		ChangeType:     c.Query("change_type"),
		ActionRequired: c.Query("action_required"),
		DateFrom:       c.Query("date_from"),
		DateTo:         c.Query("date_to"),
	}
}

func (h *UpdateHandler) Board(c *fiber.Ctx) error {
	board, err := h.updateService.Board(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(board)
}

func (h *UpdateHandler) List(c *fiber.Ctx) error {
	filters := h.validator.UpdateFilters(updateQueryFromCtx(c))
	params := getPaginationParams(c)

	result, err := h.updateService.List(c.Context(), filters, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// ListByCategory and ListByStatus back the category/status browse pages;
// the path segment is validated the same way the query-string filter is.
func (h *UpdateHandler) ListByCategory(c *fiber.Ctx) error {
	query := updateQueryFromCtx(c)
	query.Category = c.Params("category")

	filters := h.validator.UpdateFilters(query)
	if filters.Category == nil {
		return middleware.NotFound("Unknown update category")
	}

	result, err := h.updateService.List(c.Context(), filters, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *UpdateHandler) ListByStatus(c *fiber.Ctx) error {
	query := updateQueryFromCtx(c)
	query.Status = c.Params("status")

	filters := h.validator.UpdateFilters(query)
	if filters.Status == nil {
		return middleware.NotFound("Unknown update status")
	}

	result, err := h.updateService.List(c.Context(), filters, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *UpdateHandler) Search(c *fiber.Ctx) error {
	query, err := h.validator.SearchQuery(c.Query("q"))
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", 0)
	updates, err := h.updateService.Search(c.Context(), query, limit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"results": updates,
		"count":   len(updates),
	})
}

func (h *UpdateHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("updateId"))
	if err != nil {
		return middleware.BadRequest("Invalid update ID")
	}

	upd, err := h.updateService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(upd)
}

func (h *UpdateHandler) Bookmark(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("updateId"))
	if err != nil {
		return middleware.BadRequest("Invalid update ID")
	}

	var body struct {
		Bookmarked bool `json:"bookmarked"`
	}
	if err := c.BodyParser(&body); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	interaction, err := h.notifService.Bookmark(c.Context(), middleware.GetSessionKey(c), id, body.Bookmarked)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(interaction)
}

func (h *UpdateHandler) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("updateId"))
	if err != nil {
		return middleware.BadRequest("Invalid update ID")
	}

	var body struct {
		Read bool `json:"read"`
	}
	if err := c.BodyParser(&body); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	interaction, err := h.notifService.MarkRead(c.Context(), middleware.GetSessionKey(c), id, body.Read)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(interaction)
}

func (h *UpdateHandler) Bookmarks(c *fiber.Ctx) error {
	updates, err := h.notifService.Bookmarks(c.Context(), middleware.GetSessionKey(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"bookmarks": updates})
}

func (h *UpdateHandler) CreateReminder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("updateId"))
	if err != nil {
		return middleware.BadRequest("Invalid update ID")
	}

	var input domain.CreateReminderInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.RemindAt.IsZero() {
		return middleware.BadRequest("remind_at is required")
	}

	reminder, err := h.notifService.CreateReminder(c.Context(), middleware.GetSessionKey(c), id, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(reminder)
}

func (h *UpdateHandler) ListReminders(c *fiber.Ctx) error {
	reminders, err := h.notifService.ListReminders(c.Context(), middleware.GetSessionKey(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"reminders": reminders})
}

func (h *UpdateHandler) DeleteReminder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("reminderId"))
	if err != nil {
		return middleware.BadRequest("Invalid reminder ID")
	}

	if err := h.notifService.DeleteReminder(c.Context(), middleware.GetSessionKey(c), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Reminder deleted"})
}

func (h *UpdateHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Title == "" || input.Description == "" {
		return middleware.BadRequest("Title and description are required")
	}
	if !input.Status.IsValid() {
		return middleware.BadRequest("Invalid status")
	}
	if !input.ImpactLevel.IsValid() {
		return middleware.BadRequest("Invalid impact level")
	}

	upd, err := h.updateService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(upd)
}

func (h *UpdateHandler) Edit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("updateId"))
	if err != nil {
		return middleware.BadRequest("Invalid update ID")
	}

	var input domain.EditUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	upd, err := h.updateService.Edit(c.Context(), id, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(upd)
}

func (h *UpdateHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("updateId"))
	if err != nil {
		return middleware.BadRequest("Invalid update ID")
	}

	if err := h.updateService.Delete(c.Context(), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Update deleted"})
}

type bulkStatusRequest struct {
	IDs    []uuid.UUID         `json:"ids"`
	Status domain.UpdateStatus `json:"status"`
}

func (h *UpdateHandler) BulkSetStatus(c *fiber.Ctx) error {
	var body bulkStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if len(body.IDs) == 0 {
		return middleware.BadRequest("At least one update ID is required")
	}
	if !body.Status.IsValid() {
		return middleware.BadRequest("Invalid status")
	}

	result, err := h.updateService.BulkSetStatus(c.Context(), body.IDs, body.Status)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *UpdateHandler) BulkDelete(c *fiber.Ctx) error {
	var body struct {
		IDs []uuid.UUID `json:"ids"`
	}
	if err := c.BodyParser(&body); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if len(body.IDs) == 0 {
		return middleware.BadRequest("At least one update ID is required")
	}

	result, err := h.updateService.BulkDelete(c.Context(), body.IDs)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// DeadlineReminders lists updates whose compliance deadline falls inside
// the requested window, for the admin review queue.
func (h *UpdateHandler) DeadlineReminders(c *fiber.Ctx) error {
	days := c.QueryInt("days", 0)

	updates, err := h.updateService.DeadlineReminders(c.Context(), days)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"updates": updates,
		"count":   len(updates),
	})
}
