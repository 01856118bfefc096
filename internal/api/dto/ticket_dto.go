package dto

import (
	"time"

	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/query"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

// TicketResponse is the wire shape of a ticket.
type TicketResponse struct {
	ID                  string                `json:"id"`
	Name                string                `json:"name"`
	Email               string                `json:"email"`
	Category            domain.TicketCategory `json:"category"`
	Priority            domain.TicketPriority `json:"priority"`
	Description         string                `json:"description"`
	Status              domain.TicketStatus   `json:"status"`
	AICategory          domain.TicketCategory `json:"aiCategory,omitempty"`
	AIConfidence        float64               `json:"aiConfidence,omitempty"`
	AISuggestedPriority domain.TicketPriority `json:"aiSuggestedPriority,omitempty"`
	CreatedAt           time.Time             `json:"createdAt"`
	UpdatedAt           time.Time             `json:"updatedAt"`
}

// TicketListResponse pairs the filtered tickets with the view aggregates.
type TicketListResponse struct {
	Data  []TicketResponse `json:"data"`
	Stats query.Stats      `json:"stats"`
}

// FromTicket maps a domain ticket to its response shape.
func FromTicket(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:                  ticket.ID,
		Name:                ticket.Name,
		Email:               ticket.Email,
		Category:            ticket.Category,
		Priority:            ticket.Priority,
		Description:         ticket.Description,
		Status:              ticket.Status,
		AICategory:          ticket.AICategory,
		AIConfidence:        ticket.AIConfidence,
		AISuggestedPriority: ticket.AISuggestedPriority,
		CreatedAt:           ticket.CreatedAt,
		UpdatedAt:           ticket.UpdatedAt,
	}
}
