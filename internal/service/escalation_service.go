package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/support-desk/internal/events"
	"github.com/spec-kit/support-desk/internal/observability"
	"github.com/spec-kit/support-desk/internal/statuspage"
)

// IncidentClient raises incidents on the external status page.
type IncidentClient interface {
	CreateIncident(ctx context.Context, incident statuspage.Incident) error
}

// EscalationService listens for ticket events and raises incidents on the
// status page for tickets that look critical. The outbound call is
// fire-and-forget: it runs detached from the request, its failure is logged
// and swallowed, and ticket creation never depends on it.
type EscalationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	client     IncidentClient
	metrics    *observability.Metrics
	timeout    time.Duration

	inflight sync.WaitGroup
}

// NewEscalationService creates the service.
func NewEscalationService(dispatcher events.Dispatcher, logger *zap.Logger, client IncidentClient, metrics *observability.Metrics, timeout time.Duration) *EscalationService {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &EscalationService{
		dispatcher: dispatcher,
		logger:     logger,
		client:     client,
		metrics:    metrics,
		timeout:    timeout,
	}
}

// RegisterHandlers subscribes to events.
func (e *EscalationService) RegisterHandlers() {
	if e.dispatcher == nil {
		return
	}
	e.dispatcher.Subscribe(events.EventTicketCreated, e.handleTicketCreated)
	e.dispatcher.Subscribe(events.EventTicketEscalated, e.handleTicketEscalated)
}

// Wait blocks until in-flight incident calls finish. Used at shutdown and in
// tests; request paths never call it.
func (e *EscalationService) Wait() {
	e.inflight.Wait()
}

func (e *EscalationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	e.metrics.RecordTicketCreated()
	e.logger.Info("TicketCreated", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	return nil
}

func (e *EscalationService) handleTicketEscalated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketEscalatedPayload)
	if !ok {
		return nil
	}
	incident := statuspage.BuildIncident(payload.Description, payload.Category, payload.Priority, payload.SuggestedPriority)

	e.inflight.Add(1)
	go func() {
		defer e.inflight.Done()
		callCtx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()

		if err := e.client.CreateIncident(callCtx, incident); err != nil {
			e.metrics.RecordEscalation("failed")
			e.logger.Warn("status page unavailable, skipping incident creation",
				zap.String("ticket_id", event.TicketID),
				zap.Error(err))
			return
		}
		e.metrics.RecordEscalation("ok")
		e.logger.Info("created incident on status page",
			zap.String("ticket_id", event.TicketID),
			zap.String("severity", string(incident.Severity)))
	}()
	return nil
}
