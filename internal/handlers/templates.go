package handlers

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"yearbook/internal/models"
	"yearbook/internal/store"
)

// TemplateHandler handles greeting template CRUD.
type TemplateHandler struct {
	store store.Collection[models.Template]
}

// NewTemplateHandler creates a new template handler.
func NewTemplateHandler(c store.Collection[models.Template]) *TemplateHandler {
	return &TemplateHandler{store: c}
}

// List returns all templates, newest first.
func (h *TemplateHandler) List(c fiber.Ctx) error {
	all := h.store.GetAll(c.Context())
	if all == nil {
		all = []models.Template{}
	}
	return c.JSON(all)
}

// Create stores a new template.
func (h *TemplateHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name    string `json:"name"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(body.Name)
	content := strings.TrimSpace(body.Content)
	if name == "" {
		return jsonError(c, fiber.StatusBadRequest, "name is required")
	}
	if content == "" {
		return jsonError(c, fiber.StatusBadRequest, "content is required")
	}

	tmpl := models.Template{
		Name:      name,
		Content:   content,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	if err := h.store.Insert(c.Context(), tmpl); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"template": tmpl,
	})
}

// Delete removes the template matching the name.
func (h *TemplateHandler) Delete(c fiber.Ctx) error {
	name := c.Params("name")

	ok, err := h.store.Delete(c.Context(), name)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "template not found")
	}

	return c.JSON(fiber.Map{
		"status": "deleted",
	})
}
