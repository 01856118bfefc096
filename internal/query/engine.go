package query

import (
	"sort"

	"github.com/spec-kit/support-desk/internal/domain"
)

// ViewMode is a named filter lens over the ticket collection.
type ViewMode string

const (
	ViewModeAll       ViewMode = "all"
	ViewModeInbox     ViewMode = "inbox"
	ViewModeMyTickets ViewMode = "my-tickets"
)

// Tab is an additional status filter layered over the active view.
type Tab string

const (
	TabAll        Tab = "all"
	TabOpen       Tab = "open"
	TabInProgress Tab = "in_progress"
	TabResolved   Tab = "resolved"
)

// Criteria captures the optional, AND-combined ticket filters. Zero values
// mean "no filter". Unrecognized enum values simply match nothing; they are
// validated upstream.
type Criteria struct {
	Status   domain.TicketStatus
	Priority domain.TicketPriority
	Category domain.TicketCategory
	View     ViewMode
	Tab      Tab
}

// Stats aggregates a view of the collection. Counts are computed over the
// per-view set, before the tab filter, so switching tabs does not change the
// displayed totals.
type Stats struct {
	Total      int                            `json:"total"`
	Open       int                            `json:"open"`
	InProgress int                            `json:"inProgress"`
	Resolved   int                            `json:"resolved"`
	Closed     int                            `json:"closed"`
	Urgent     int                            `json:"urgent"`
	ByCategory map[domain.TicketCategory]int `json:"byCategory"`
}

// Result pairs the ordered, filtered tickets with the view aggregates.
type Result struct {
	Tickets []domain.Ticket
	Stats   Stats
}

// Run filters, orders and aggregates a ticket snapshot. The input slice is
// never mutated; ordering is newest-first with ties kept in their original
// relative order.
func Run(tickets []domain.Ticket, criteria Criteria) Result {
	filtered := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if matches(t, criteria) {
			filtered = append(filtered, t)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	stats := computeStats(filtered)

	if criteria.Tab != "" && criteria.Tab != TabAll {
		tabbed := filtered[:0:0]
		for _, t := range filtered {
			if t.Status == domain.TicketStatus(criteria.Tab) {
				tabbed = append(tabbed, t)
			}
		}
		filtered = tabbed
	}

	return Result{Tickets: filtered, Stats: stats}
}

func matches(t domain.Ticket, criteria Criteria) bool {
	if criteria.Status != "" && t.Status != criteria.Status {
		return false
	}
	if criteria.Priority != "" && t.Priority != criteria.Priority {
		return false
	}
	if criteria.Category != "" && t.Category != criteria.Category {
		return false
	}
	return inView(t, criteria.View)
}

func inView(t domain.Ticket, view ViewMode) bool {
	switch view {
	case ViewModeInbox:
		return t.Status == domain.TicketStatusOpen || t.Status == domain.TicketStatusInProgress
	case ViewModeMyTickets:
		// Demo stand-in for per-user ownership: tickets with an odd
		// numeric id suffix belong to the current user.
		n, ok := domain.SequenceNumber(t.ID)
		return ok && n%2 == 1
	default:
		return true
	}
}

func computeStats(tickets []domain.Ticket) Stats {
	stats := Stats{
		Total:      len(tickets),
		ByCategory: make(map[domain.TicketCategory]int),
	}
	for _, t := range tickets {
		switch t.Status {
		case domain.TicketStatusOpen:
			stats.Open++
		case domain.TicketStatusInProgress:
			stats.InProgress++
		case domain.TicketStatusResolved:
			stats.Resolved++
		case domain.TicketStatusClosed:
			stats.Closed++
		}
		if t.Priority == domain.TicketPriorityUrgent {
			stats.Urgent++
		}
		stats.ByCategory[t.Category]++
	}
	return stats
}
