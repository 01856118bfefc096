package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/events"
	"github.com/spec-kit/support-desk/internal/observability"
	"github.com/spec-kit/support-desk/internal/statuspage"
	"github.com/spec-kit/support-desk/internal/store"
	"github.com/spec-kit/support-desk/internal/validation"
)

type fakeIncidentClient struct {
	mu        sync.Mutex
	incidents []statuspage.Incident
	err       error
}

func (f *fakeIncidentClient) CreateIncident(ctx context.Context, incident statuspage.Incident) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.incidents = append(f.incidents, incident)
	return nil
}

func (f *fakeIncidentClient) created() []statuspage.Incident {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]statuspage.Incident{}, f.incidents...)
}

func newEscalationFixture(client *fakeIncidentClient) (*TicketService, *EscalationService, *observability.Metrics) {
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	escalation := NewEscalationService(dispatcher, zap.NewNop(), client, metrics, time.Second)
	escalation.RegisterHandlers()

	svc := NewTicketService(TicketDependencies{
		Store:      store.NewMemoryStore(nil),
		Dispatcher: dispatcher,
	})
	return svc, escalation, metrics
}

func TestEscalationCreatesIncident(t *testing.T) {
	client := &fakeIncidentClient{}
	svc, escalation, metrics := newEscalationFixture(client)

	_, err := svc.Submit(context.Background(), validation.TicketSubmission{
		Name:        "Anna Martinez",
		Email:       "anna@example.com",
		Category:    "technical",
		Priority:    "urgent",
		Description: "Production server is down! All our users are affected right now.",
	})
	require.NoError(t, err)
	escalation.Wait()

	incidents := client.created()
	require.Len(t, incidents, 1)
	assert.Equal(t, "Customer Report: Production server is down! All our users are affe...", incidents[0].Title)
	assert.Equal(t, "api", incidents[0].ServiceID)
	assert.Equal(t, statuspage.SeverityCritical, incidents[0].Severity)
	assert.Equal(t, int64(1), metrics.Escalations("ok"))
	assert.Equal(t, int64(1), metrics.TicketsCreated())
}

func TestEscalationMajorSeverityForNonUrgent(t *testing.T) {
	client := &fakeIncidentClient{}
	svc, escalation, _ := newEscalationFixture(client)

	// "broken" triggers the keyword predicate but neither priority is urgent.
	_, err := svc.Submit(context.Background(), validation.TicketSubmission{
		Name:        "James Wilson",
		Email:       "james@example.com",
		Category:    "billing",
		Priority:    "medium",
		Description: "The invoice PDF link appears broken on my end.",
	})
	require.NoError(t, err)
	escalation.Wait()

	incidents := client.created()
	require.Len(t, incidents, 1)
	assert.Equal(t, statuspage.SeverityMajor, incidents[0].Severity)
	assert.Equal(t, "web", incidents[0].ServiceID)
}

func TestEscalationFailureNeverFailsIngestion(t *testing.T) {
	client := &fakeIncidentClient{err: errors.New("connection refused")}
	svc, escalation, metrics := newEscalationFixture(client)

	ticket, err := svc.Submit(context.Background(), validation.TicketSubmission{
		Name:        "Mike Chen",
		Email:       "mike@example.com",
		Category:    "technical",
		Priority:    "urgent",
		Description: "Cannot reach the dashboard at all, this is urgent.",
	})
	require.NoError(t, err, "ticket creation must not depend on the status page")
	require.NotNil(t, ticket)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)

	escalation.Wait()
	assert.Empty(t, client.created())
	assert.Equal(t, int64(1), metrics.Escalations("failed"))
}

func TestCalmTicketRaisesNoIncident(t *testing.T) {
	client := &fakeIncidentClient{}
	svc, escalation, _ := newEscalationFixture(client)

	_, err := svc.Submit(context.Background(), validation.TicketSubmission{
		Name:        "Lisa Park",
		Email:       "lisa@example.com",
		Category:    "general",
		Priority:    "low",
		Description: "Thanks for the great support last week, all sorted now.",
	})
	require.NoError(t, err)
	escalation.Wait()

	assert.Empty(t, client.created())
}
