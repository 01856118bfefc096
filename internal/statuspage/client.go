package statuspage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spec-kit/support-desk/internal/domain"
)

// Severity grades an incident on the status page.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
)

// Incident is the outbound payload for the status page's incident endpoint.
type Incident struct {
	Title     string   `json:"title"`
	ServiceID string   `json:"serviceId"`
	Severity  Severity `json:"severity"`
}

const incidentTitleMax = 50

// BuildIncident derives an incident from an escalated ticket: a truncated
// customer-report title, the service affected by the ticket's category, and
// a severity based on declared or suggested urgency.
func BuildIncident(description string, category domain.TicketCategory, declared, suggested domain.TicketPriority) Incident {
	title := description
	if runes := []rune(title); len(runes) > incidentTitleMax {
		title = string(runes[:incidentTitleMax]) + "..."
	}

	severity := SeverityMajor
	if declared == domain.TicketPriorityUrgent || suggested == domain.TicketPriorityUrgent {
		severity = SeverityCritical
	}

	return Incident{
		Title:     "Customer Report: " + title,
		ServiceID: serviceForCategory(category),
		Severity:  severity,
	}
}

func serviceForCategory(category domain.TicketCategory) string {
	if category == domain.TicketCategoryTechnical {
		return "api"
	}
	return "web"
}

// Client talks to the external status-page service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a client with a bounded per-call timeout; the status
// page is a best-effort side channel and must never hold up a caller.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// CreateIncident posts an incident to the status page.
func (c *Client) CreateIncident(ctx context.Context, incident Incident) error {
	body, err := json.Marshal(incident)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/incidents", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("status page returned %d", resp.StatusCode)
	}
	return nil
}
