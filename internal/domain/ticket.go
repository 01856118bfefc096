package domain

import (
	"regexp"
	"strconv"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketPriority enumerates submitter-declared urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// TicketCategory enumerates the submitter-selectable categories.
type TicketCategory string

const (
	TicketCategoryBilling        TicketCategory = "billing"
	TicketCategoryTechnical      TicketCategory = "technical"
	TicketCategoryGeneral        TicketCategory = "general"
	TicketCategoryFeatureRequest TicketCategory = "feature-request"
)

// ValidStatus reports whether s is a member of the closed status set.
func ValidStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// ValidPriority reports whether p is a member of the closed priority set.
func ValidPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// ValidCategory reports whether c is a member of the closed category set.
func ValidCategory(c TicketCategory) bool {
	switch c {
	case TicketCategoryBilling, TicketCategoryTechnical, TicketCategoryGeneral, TicketCategoryFeatureRequest:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests. The AI* fields hold triage
// output and are present only for tickets created through ingestion.
type Ticket struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Email               string         `json:"email"`
	Category            TicketCategory `json:"category"`
	Priority            TicketPriority `json:"priority"`
	Description         string         `json:"description"`
	Status              TicketStatus   `json:"status"`
	AICategory          TicketCategory `json:"aiCategory,omitempty"`
	AIConfidence        float64        `json:"aiConfidence,omitempty"`
	AISuggestedPriority TicketPriority `json:"aiSuggestedPriority,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// CreateTicketInput is a validated, normalized submission.
type CreateTicketInput struct {
	Name        string
	Email       string
	Category    TicketCategory
	Priority    TicketPriority
	Description string
}

var idSuffixPattern = regexp.MustCompile(`ticket-(\d+)`)

// SequenceNumber extracts the numeric suffix of a ticket id.
// Returns 0 and false when the id carries no numeric suffix.
func SequenceNumber(id string) (int, bool) {
	match := idSuffixPattern.FindStringSubmatch(id)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatID renders a sequence number as a zero-padded ticket id,
// e.g. 9 -> "ticket-009".
func FormatID(seq int) string {
	s := strconv.Itoa(seq)
	for len(s) < 3 {
		s = "0" + s
	}
	return "ticket-" + s
}
