package worker

import (
	"github.com/spec-kit/support-desk/internal/service"
)

// StartEscalationWorker registers escalation event handlers.
func StartEscalationWorker(escalationService *service.EscalationService) {
	if escalationService == nil {
		return
	}
	escalationService.RegisterHandlers()
}
