package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/events"
	"github.com/spec-kit/support-desk/internal/query"
	"github.com/spec-kit/support-desk/internal/store"
	"github.com/spec-kit/support-desk/internal/triage"
	"github.com/spec-kit/support-desk/internal/validation"
	apperrors "github.com/spec-kit/support-desk/pkg/util"
)

// TicketService coordinates the ingestion workflow and read queries.
type TicketService struct {
	store      *store.MemoryStore
	dispatcher events.Dispatcher
	now        func() time.Time
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Store      *store.MemoryStore
	Dispatcher events.Dispatcher
	Clock      func() time.Time
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	return &TicketService{
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		now:        now,
	}
}

// Submit runs the ingestion workflow: validate, classify, store, and flag
// for escalation. On validation failure nothing is stored and no
// classification runs; the returned error carries the field -> messages map.
// A ticket is either fully validated, classified and stored, or not stored
// at all.
func (s *TicketService) Submit(ctx context.Context, sub validation.TicketSubmission) (*domain.Ticket, error) {
	input, fieldErrs := validation.ValidateTicket(sub)
	if fieldErrs.HasErrors() {
		details := make(map[string]any, len(fieldErrs))
		for field, messages := range fieldErrs {
			details[field] = messages
		}
		return nil, apperrors.NewValidationError("Validation failed", details)
	}

	result := triage.Classify(input.Description, input.Category)
	now := s.now()

	ticket := s.store.InsertNew(func(id string) domain.Ticket {
		return domain.Ticket{
			ID:                  id,
			Name:                input.Name,
			Email:               input.Email,
			Category:            input.Category,
			Priority:            input.Priority,
			Description:         input.Description,
			Status:              domain.TicketStatusOpen,
			AICategory:          result.Category,
			AIConfidence:        result.Confidence,
			AISuggestedPriority: result.SuggestedPriority,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
	})

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			Category:          ticket.Category,
			Priority:          ticket.Priority,
			AICategory:        ticket.AICategory,
			AIConfidence:      ticket.AIConfidence,
			SuggestedPriority: ticket.AISuggestedPriority,
		},
	})

	if triage.ShouldEscalate(ticket.Description, ticket.Priority, ticket.AISuggestedPriority) {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketEscalated,
			TicketID: ticket.ID,
			Payload: events.TicketEscalatedPayload{
				Category:          ticket.Category,
				Priority:          ticket.Priority,
				SuggestedPriority: ticket.AISuggestedPriority,
				Description:       ticket.Description,
			},
		})
	}

	return &ticket, nil
}

// ListTickets filters and aggregates a point-in-time snapshot of the store.
func (s *TicketService) ListTickets(ctx context.Context, criteria query.Criteria) query.Result {
	return query.Run(s.store.Snapshot(), criteria)
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
