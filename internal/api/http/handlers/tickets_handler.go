package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-desk/internal/api/dto"
	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/query"
	"github.com/spec-kit/support-desk/internal/service"
	"github.com/spec-kit/support-desk/internal/validation"
	apperrors "github.com/spec-kit/support-desk/pkg/util"
)

// TicketsHandler manages the ticket submission and listing endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.Submit(c.UserContext(), validation.TicketSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Category:    req.Category,
		Priority:    req.Priority,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.FromTicket(ticket)})
}

// ListTickets GET /tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	criteria := parseTicketQuery(c)
	result := h.service.ListTickets(c.UserContext(), criteria)

	items := make([]dto.TicketResponse, 0, len(result.Tickets))
	for i := range result.Tickets {
		items = append(items, dto.FromTicket(&result.Tickets[i]))
	}
	return c.JSON(dto.TicketListResponse{Data: items, Stats: result.Stats})
}

func parseTicketQuery(c *fiber.Ctx) query.Criteria {
	criteria := query.Criteria{
		Status:   domain.TicketStatus(c.Query("status")),
		Priority: domain.TicketPriority(c.Query("priority")),
		Category: domain.TicketCategory(c.Query("category")),
		View:     query.ViewMode(c.Query("view")),
		Tab:      query.Tab(c.Query("tab")),
	}
	if criteria.View == "" {
		criteria.View = query.ViewModeAll
	}
	if criteria.Tab == "" {
		criteria.Tab = query.TabAll
	}
	return criteria
}
