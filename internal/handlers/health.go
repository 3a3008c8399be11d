package handlers

import (
	"github.com/gofiber/fiber/v3"

	"yearbook/internal/store"
)

// HealthHandler reports process liveness and the active storage backend.
type HealthHandler struct {
	stores *store.Stores
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(stores *store.Stores) *HealthHandler {
	return &HealthHandler{stores: stores}
}

// Check returns liveness and the backend selected at boot.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"backend": h.stores.Backend,
	})
}
