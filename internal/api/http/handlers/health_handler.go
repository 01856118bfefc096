package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-desk/internal/store"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	store       *store.MemoryStore
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, ticketStore *store.MemoryStore) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, store: ticketStore}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness and the current ticket count.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ready",
		"tickets": h.store.Len(),
	})
}
