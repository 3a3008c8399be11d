package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v3"

	"yearbook/internal/cache"
	"yearbook/internal/links"
	"yearbook/internal/models"
)

// LinkHandler handles personalized link CRUD.
type LinkHandler struct {
	resolver *links.Resolver
	pages    *cache.Pages
}

// NewLinkHandler creates a new link handler.
func NewLinkHandler(resolver *links.Resolver, pages *cache.Pages) *LinkHandler {
	return &LinkHandler{resolver: resolver, pages: pages}
}

// List returns all links, newest first.
func (h *LinkHandler) List(c fiber.Ctx) error {
	all := h.resolver.All(c.Context())
	if all == nil {
		all = []models.Link{}
	}
	return c.JSON(all)
}

// Create creates a new personalized link.
func (h *LinkHandler) Create(c fiber.Ctx) error {
	var body struct {
		RecipientName string `json:"recipient_name"`
		Message       string `json:"message"`
		Slug          string `json:"slug"`
		PageTitle     string `json:"page_title"`
		SenderName    string `json:"sender_name"`
		Subtitle      string `json:"subtitle"`
		OGImage       string `json:"og_image"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	recipient := strings.TrimSpace(body.RecipientName)
	message := strings.TrimSpace(body.Message)
	if recipient == "" {
		return jsonError(c, fiber.StatusBadRequest, "recipient_name is required")
	}
	if message == "" {
		return jsonError(c, fiber.StatusBadRequest, "message is required")
	}

	link, err := h.resolver.Create(c.Context(), links.CreateParams{
		RecipientName: recipient,
		Message:       message,
		CustomSlug:    strings.TrimSpace(body.Slug),
		PageTitle:     strings.TrimSpace(body.PageTitle),
		SenderName:    strings.TrimSpace(body.SenderName),
		Subtitle:      strings.TrimSpace(body.Subtitle),
		OGImage:       strings.TrimSpace(body.OGImage),
	})
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"link":   link,
	})
}

// Update merges the allow-listed fields from the request body into the
// link matching the slug.
func (h *LinkHandler) Update(c fiber.Ctx) error {
	slug := c.Params("slug")

	var patch map[string]any
	if err := json.Unmarshal(c.Body(), &patch); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	ok, err := h.resolver.Update(c.Context(), slug, patch)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "link not found")
	}

	h.pages.Invalidate(slug)
	return c.JSON(fiber.Map{
		"status": "success",
		"slug":   slug,
	})
}

// Delete removes the link matching the slug.
func (h *LinkHandler) Delete(c fiber.Ctx) error {
	slug := c.Params("slug")

	ok, err := h.resolver.Delete(c.Context(), slug)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "link not found")
	}

	h.pages.Invalidate(slug)
	return c.JSON(fiber.Map{
		"status": "deleted",
	})
}
