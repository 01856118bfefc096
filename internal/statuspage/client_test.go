package statuspage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-desk/internal/domain"
)

func TestBuildIncident(t *testing.T) {
	tests := []struct {
		name        string
		description string
		category    domain.TicketCategory
		declared    domain.TicketPriority
		suggested   domain.TicketPriority
		wantTitle   string
		wantService string
		wantSev     Severity
	}{
		{
			name:        "short description kept verbatim",
			description: "Checkout is broken",
			category:    domain.TicketCategoryTechnical,
			declared:    domain.TicketPriorityMedium,
			suggested:   domain.TicketPriorityMedium,
			wantTitle:   "Customer Report: Checkout is broken",
			wantService: "api",
			wantSev:     SeverityMajor,
		},
		{
			name:        "long description truncated at 50 with ellipsis",
			description: strings.Repeat("a", 60),
			category:    domain.TicketCategoryBilling,
			declared:    domain.TicketPriorityUrgent,
			suggested:   domain.TicketPriorityMedium,
			wantTitle:   "Customer Report: " + strings.Repeat("a", 50) + "...",
			wantService: "web",
			wantSev:     SeverityCritical,
		},
		{
			name:        "suggested urgency alone is critical",
			description: "Site down for everyone",
			category:    domain.TicketCategoryGeneral,
			declared:    domain.TicketPriorityLow,
			suggested:   domain.TicketPriorityUrgent,
			wantTitle:   "Customer Report: Site down for everyone",
			wantService: "web",
			wantSev:     SeverityCritical,
		},
		{
			name:        "multi-byte characters are counted, not bytes",
			description: strings.Repeat("a", 49) + "éxx",
			category:    domain.TicketCategoryTechnical,
			declared:    domain.TicketPriorityMedium,
			suggested:   domain.TicketPriorityMedium,
			wantTitle:   "Customer Report: " + strings.Repeat("a", 49) + "é...",
			wantService: "api",
			wantSev:     SeverityMajor,
		},
		{
			name:        "exactly 50 characters gets no ellipsis",
			description: strings.Repeat("b", 50),
			category:    domain.TicketCategoryFeatureRequest,
			declared:    domain.TicketPriorityHigh,
			suggested:   domain.TicketPriorityHigh,
			wantTitle:   "Customer Report: " + strings.Repeat("b", 50),
			wantService: "web",
			wantSev:     SeverityMajor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildIncident(tt.description, tt.category, tt.declared, tt.suggested)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.True(t, utf8.ValidString(got.Title))
			assert.Equal(t, tt.wantService, got.ServiceID)
			assert.Equal(t, tt.wantSev, got.Severity)
		})
	}
}

func TestCreateIncidentPostsJSON(t *testing.T) {
	var received Incident
	var gotPath, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	incident := Incident{Title: "Customer Report: checkout down", ServiceID: "api", Severity: SeverityCritical}
	require.NoError(t, client.CreateIncident(context.Background(), incident))

	assert.Equal(t, "/api/incidents", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, incident, received)
}

func TestCreateIncidentReportsServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.CreateIncident(context.Background(), Incident{Title: "x", ServiceID: "web", Severity: SeverityMajor})
	assert.Error(t, err)
}

func TestCreateIncidentUnreachableHost(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	err := client.CreateIncident(context.Background(), Incident{Title: "x", ServiceID: "web", Severity: SeverityMajor})
	assert.Error(t, err)
}
