package triage

import (
	"math"
	"strings"

	"github.com/spec-kit/support-desk/internal/domain"
)

// Result is the outcome of classifying a ticket description.
type Result struct {
	Category          domain.TicketCategory
	Confidence        float64
	SuggestedPriority domain.TicketPriority
}

const (
	baseConfidence = 0.85
	maxConfidence  = 0.98
	urgencyBoost   = 0.05
)

// categoryRule maps a keyword set to a category outcome. Rules are evaluated
// in order; the first rule with a matching keyword wins.
type categoryRule struct {
	keywords   []string
	category   domain.TicketCategory
	confidence float64
}

var categoryRules = []categoryRule{
	{
		keywords:   []string{"payment", "charge", "invoice", "billing"},
		category:   domain.TicketCategoryBilling,
		confidence: 0.92,
	},
	{
		keywords:   []string{"bug", "error", "crash", "not working"},
		category:   domain.TicketCategoryTechnical,
		confidence: 0.88,
	},
	{
		keywords:   []string{"feature", "would like", "suggestion"},
		category:   domain.TicketCategoryFeatureRequest,
		confidence: 0.86,
	},
}

// priorityRule maps a keyword set to a suggested priority. A rule may also
// raise the running confidence when it fires.
type priorityRule struct {
	keywords []string
	priority domain.TicketPriority
	boost    bool
}

var priorityRules = []priorityRule{
	{
		keywords: []string{"urgent", "critical", "down", "immediately"},
		priority: domain.TicketPriorityUrgent,
		boost:    true,
	},
	{
		keywords: []string{"asap", "important", "blocking"},
		priority: domain.TicketPriorityHigh,
	},
	{
		keywords: []string{"when possible", "nice to have"},
		priority: domain.TicketPriorityLow,
	},
}

// Classify runs deterministic keyword triage over a ticket description.
// The submitter's own category is the fallback when no category rule fires.
// Pure and total: every input yields a result.
func Classify(description string, userCategory domain.TicketCategory) Result {
	lower := strings.ToLower(description)

	result := Result{
		Category:          userCategory,
		Confidence:        baseConfidence,
		SuggestedPriority: domain.TicketPriorityMedium,
	}

	for _, rule := range categoryRules {
		if containsAny(lower, rule.keywords) {
			result.Category = rule.category
			result.Confidence = rule.confidence
			break
		}
	}

	for _, rule := range priorityRules {
		if containsAny(lower, rule.keywords) {
			result.SuggestedPriority = rule.priority
			if rule.boost {
				result.Confidence = math.Min(result.Confidence+urgencyBoost, maxConfidence)
			}
			break
		}
	}

	result.Confidence = math.Round(result.Confidence*100) / 100
	return result
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
