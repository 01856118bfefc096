package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/support-desk/internal/domain"
)

func TestShouldEscalate(t *testing.T) {
	tests := []struct {
		name        string
		description string
		declared    domain.TicketPriority
		suggested   domain.TicketPriority
		want        bool
	}{
		{"declared urgent", "please review my invoice settings", domain.TicketPriorityUrgent, domain.TicketPriorityMedium, true},
		{"suggested urgent", "please review my invoice settings", domain.TicketPriorityLow, domain.TicketPriorityUrgent, true},
		{"outage keyword", "we are seeing an outage in Europe", domain.TicketPriorityMedium, domain.TicketPriorityMedium, true},
		{"keyword is case-insensitive", "The checkout flow is BROKEN", domain.TicketPriorityLow, domain.TicketPriorityLow, true},
		{"not working phrase", "The mobile app is not working", domain.TicketPriorityLow, domain.TicketPriorityMedium, true},
		{"calm ticket", "please update my contact details", domain.TicketPriorityLow, domain.TicketPriorityMedium, false},
		{"high priority alone does not escalate", "please hurry with my request", domain.TicketPriorityHigh, domain.TicketPriorityHigh, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldEscalate(tt.description, tt.declared, tt.suggested)
			assert.Equal(t, tt.want, got)
		})
	}
}
