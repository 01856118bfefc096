package store

import (
	"time"

	"github.com/spec-kit/support-desk/internal/domain"
)

// SeedTickets returns the demo dataset the service starts with. Timestamps
// are relative to now so the list reads naturally in the UI.
func SeedTickets(now time.Time) []domain.Ticket {
	return []domain.Ticket{
		{
			ID:           "ticket-001",
			Name:         "Sarah Johnson",
			Email:        "sarah@example.com",
			Category:     domain.TicketCategoryBilling,
			Priority:     domain.TicketPriorityHigh,
			Description:  "I was charged twice for my subscription this month. Order #12345. Please help resolve this as soon as possible.",
			Status:       domain.TicketStatusOpen,
			AICategory:   domain.TicketCategoryBilling,
			AIConfidence: 0.95,
			CreatedAt:    now.Add(-1 * time.Hour),
			UpdatedAt:    now.Add(-1 * time.Hour),
		},
		{
			ID:                  "ticket-002",
			Name:                "Mike Chen",
			Email:               "mike@example.com",
			Category:            domain.TicketCategoryTechnical,
			Priority:            domain.TicketPriorityUrgent,
			Description:         "Cannot login to my account. Getting \"Invalid credentials\" error even after password reset. This is blocking my work.",
			Status:              domain.TicketStatusInProgress,
			AICategory:          domain.TicketCategoryTechnical,
			AIConfidence:        0.92,
			AISuggestedPriority: domain.TicketPriorityUrgent,
			CreatedAt:           now.Add(-2 * time.Hour),
			UpdatedAt:           now.Add(-30 * time.Minute),
		},
		{
			ID:           "ticket-003",
			Name:         "Emily Rodriguez",
			Email:        "emily@example.com",
			Category:     domain.TicketCategoryFeatureRequest,
			Priority:     domain.TicketPriorityMedium,
			Description:  "Would love to see dark mode support in the mobile app. Many users prefer working in low-light environments.",
			Status:       domain.TicketStatusOpen,
			AICategory:   domain.TicketCategoryFeatureRequest,
			AIConfidence: 0.88,
			CreatedAt:    now.Add(-24 * time.Hour),
			UpdatedAt:    now.Add(-24 * time.Hour),
		},
		{
			ID:           "ticket-004",
			Name:         "James Wilson",
			Email:        "james@example.com",
			Category:     domain.TicketCategoryTechnical,
			Priority:     domain.TicketPriorityHigh,
			Description:  "The export function is not working properly. CSV files are coming out corrupted when exporting large datasets.",
			Status:       domain.TicketStatusInProgress,
			AICategory:   domain.TicketCategoryTechnical,
			AIConfidence: 0.91,
			CreatedAt:    now.Add(-12 * time.Hour),
			UpdatedAt:    now.Add(-1 * time.Hour),
		},
		{
			ID:          "ticket-005",
			Name:        "Lisa Park",
			Email:       "lisa@example.com",
			Category:    domain.TicketCategoryGeneral,
			Priority:    domain.TicketPriorityLow,
			Description: "Just wanted to say thank you for the great customer service I received last week. Keep up the good work!",
			Status:      domain.TicketStatusResolved,
			CreatedAt:   now.Add(-48 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
		},
		{
			ID:           "ticket-006",
			Name:         "David Kim",
			Email:        "david@example.com",
			Category:     domain.TicketCategoryBilling,
			Priority:     domain.TicketPriorityMedium,
			Description:  "Need to update my payment method. The current card on file has expired. How do I change this?",
			Status:       domain.TicketStatusResolved,
			AICategory:   domain.TicketCategoryBilling,
			AIConfidence: 0.89,
			CreatedAt:    now.Add(-72 * time.Hour),
			UpdatedAt:    now.Add(-48 * time.Hour),
		},
		{
			ID:                  "ticket-007",
			Name:                "Anna Martinez",
			Email:               "anna@example.com",
			Category:            domain.TicketCategoryTechnical,
			Priority:            domain.TicketPriorityUrgent,
			Description:         "Production server is down! All our users are affected. This is a critical issue that needs immediate attention.",
			Status:              domain.TicketStatusOpen,
			AICategory:          domain.TicketCategoryTechnical,
			AIConfidence:        0.97,
			AISuggestedPriority: domain.TicketPriorityUrgent,
			CreatedAt:           now.Add(-30 * time.Minute),
			UpdatedAt:           now.Add(-30 * time.Minute),
		},
		{
			ID:          "ticket-008",
			Name:        "Robert Taylor",
			Email:       "robert@example.com",
			Category:    domain.TicketCategoryFeatureRequest,
			Priority:    domain.TicketPriorityLow,
			Description: "It would be nice to have keyboard shortcuts for common actions. This would improve productivity significantly.",
			Status:      domain.TicketStatusClosed,
			CreatedAt:   now.Add(-7 * 24 * time.Hour),
			UpdatedAt:   now.Add(-5 * 24 * time.Hour),
		},
	}
}
