package triage

import (
	"regexp"

	"github.com/spec-kit/support-desk/internal/domain"
)

var criticalKeywords = regexp.MustCompile(`(?i)down|outage|critical|broken|not working|emergency`)

// ShouldEscalate reports whether a freshly created ticket warrants an
// incident on the external status page: the submitter declared it urgent,
// triage suggested urgent, or the description mentions an outage-class
// keyword.
func ShouldEscalate(description string, declared, suggested domain.TicketPriority) bool {
	if declared == domain.TicketPriorityUrgent || suggested == domain.TicketPriorityUrgent {
		return true
	}
	return criticalKeywords.MatchString(description)
}
