package handlers

import (
	"os"

	"github.com/gofiber/fiber/v3"

	"yearbook/internal/cache"
	"yearbook/internal/config"
	"yearbook/internal/links"
	"yearbook/internal/metrics"
	"yearbook/internal/preview"
)

// PageHandler serves the personalized invitation pages.
type PageHandler struct {
	resolver *links.Resolver
	engine   *preview.Engine
	pages    *cache.Pages
	cfg      *config.Config
	basePath string // base HTML document shared by all personalized pages
}

// NewPageHandler creates a new page handler reading the base document from
// basePath on every render.
func NewPageHandler(resolver *links.Resolver, engine *preview.Engine, pages *cache.Pages, cfg *config.Config, basePath string) *PageHandler {
	return &PageHandler{
		resolver: resolver,
		engine:   engine,
		pages:    pages,
		cfg:      cfg,
		basePath: basePath,
	}
}

// requestBaseURL derives the externally visible origin for the current
// request. HTTPS is forced outside development or when the forwarded-proto
// header says the original request was secure, so link-unfurling crawlers
// always see https URLs in production.
func (h *PageHandler) requestBaseURL(c fiber.Ctx) string {
	if !h.cfg.IsDev() || c.Get("X-Forwarded-Proto") == "https" {
		return "https://" + c.Hostname()
	}
	return c.Scheme() + "://" + c.Hostname()
}

// Show resolves the slug, renders the personalized page, and caches the
// result. Unknown slugs produce a 404 handled by the HTML error view.
func (h *PageHandler) Show(c fiber.Ctx) error {
	slug := c.Params("slug")

	link, ok := h.resolver.GetBySlug(c.Context(), slug)
	if !ok {
		metrics.PagesRendered.WithLabelValues("not_found").Inc()
		return fiber.NewError(fiber.StatusNotFound, "404 - Link not found")
	}

	if doc, hit := h.pages.Get(slug); hit {
		metrics.PagesRendered.WithLabelValues("cached").Inc()
		c.Type("html")
		return c.Send(doc)
	}

	base, err := os.ReadFile(h.basePath)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "base document unavailable")
	}

	doc := h.engine.Render(string(base), link, h.requestBaseURL(c))
	h.pages.Set(slug, []byte(doc))
	metrics.PagesRendered.WithLabelValues("rendered").Inc()

	c.Type("html")
	return c.SendString(doc)
}
