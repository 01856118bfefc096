package events

import (
	"time"

	"github.com/spec-kit/support-desk/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated   EventType = "ticket_created"
	EventTicketEscalated EventType = "ticket_escalated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Category          domain.TicketCategory `json:"category"`
	Priority          domain.TicketPriority `json:"priority"`
	AICategory        domain.TicketCategory `json:"ai_category"`
	AIConfidence      float64               `json:"ai_confidence"`
	SuggestedPriority domain.TicketPriority `json:"suggested_priority"`
}

// TicketEscalatedPayload carries everything the escalation handler needs to
// raise an incident without re-reading the store.
type TicketEscalatedPayload struct {
	Category          domain.TicketCategory `json:"category"`
	Priority          domain.TicketPriority `json:"priority"`
	SuggestedPriority domain.TicketPriority `json:"suggested_priority"`
	Description       string                `json:"description"`
}
