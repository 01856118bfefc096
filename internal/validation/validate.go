package validation

import (
	"regexp"
	"strings"

	"github.com/spec-kit/support-desk/internal/domain"
)

// FieldErrors maps a submission field to its human-readable error messages.
type FieldErrors map[string][]string

// Add appends a message for a field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// HasErrors reports whether any field failed.
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

// TicketSubmission carries the raw, untrusted fields of a ticket form.
type TicketSubmission struct {
	Name        string
	Email       string
	Category    string
	Priority    string
	Description string
}

const (
	nameMinLen        = 2
	nameMaxLen        = 100
	descriptionMinLen = 10
	descriptionMaxLen = 2000
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateTicket checks every field of a submission and either returns the
// normalized input or the accumulated per-field errors. All fields are
// evaluated; each field stops at its first violated rule. No side effects.
func ValidateTicket(sub TicketSubmission) (domain.CreateTicketInput, FieldErrors) {
	errs := FieldErrors{}

	name := strings.TrimSpace(sub.Name)
	if len([]rune(name)) < nameMinLen {
		errs.Add("name", "Name must be at least 2 characters")
	} else if len([]rune(name)) > nameMaxLen {
		errs.Add("name", "Name must be less than 100 characters")
	}

	email := strings.ToLower(strings.TrimSpace(sub.Email))
	if !emailPattern.MatchString(email) {
		errs.Add("email", "Please enter a valid email address")
	}

	category := domain.TicketCategory(sub.Category)
	if !domain.ValidCategory(category) {
		errs.Add("category", "Please select a category")
	}

	priority := domain.TicketPriority(sub.Priority)
	if !domain.ValidPriority(priority) {
		errs.Add("priority", "Please select a priority")
	}

	description := strings.TrimSpace(sub.Description)
	if len([]rune(description)) < descriptionMinLen {
		errs.Add("description", "Description must be at least 10 characters")
	} else if len([]rune(description)) > descriptionMaxLen {
		errs.Add("description", "Description must be less than 2000 characters")
	}

	if errs.HasErrors() {
		return domain.CreateTicketInput{}, errs
	}

	return domain.CreateTicketInput{
		Name:        name,
		Email:       email,
		Category:    category,
		Priority:    priority,
		Description: description,
	}, nil
}
