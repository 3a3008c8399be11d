package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"yearbook/internal/cache"
	"yearbook/internal/handlers"
	"yearbook/internal/links"
	"yearbook/internal/notify"
	"yearbook/internal/preview"
	"yearbook/internal/store"
)

// pageCacheTTL bounds how stale a cached personalized page can get; link
// updates invalidate eagerly anyway.
const pageCacheTTL = 1 * time.Hour

// RegisterRoutes registers all application routes on top of the opened
// stores.
func (s *Server) RegisterRoutes(stores *store.Stores) {
	notifier := notify.New(s.Cfg.WebhookURL)
	resolver := links.NewResolver(stores.Links)
	engine := &preview.Engine{
		DefaultImage: s.Cfg.DefaultImage,
		Locale:       s.Cfg.SiteLocale,
	}
	pages := cache.NewPages(s.Cfg.RedisURL, pageCacheTTL)

	// Initialize handlers
	messageHandler := handlers.NewMessageHandler(stores.Messages, notifier)
	linkHandler := handlers.NewLinkHandler(resolver, pages)
	templateHandler := handlers.NewTemplateHandler(stores.Templates)
	pageHandler := handlers.NewPageHandler(resolver, engine, pages, s.Cfg, "./static/index.html")
	uploadHandler := handlers.NewUploadHandler(s.Cfg.UploadDir)
	healthHandler := handlers.NewHealthHandler(stores)

	// Guestbook API
	s.App.Get("/api/messages", messageHandler.List)
	s.App.Post("/api/messages", messageHandler.Create)
	s.App.Post("/api/seed", messageHandler.Seed)

	// Personalized links API
	s.App.Get("/api/links", linkHandler.List)
	s.App.Post("/api/links", linkHandler.Create)
	s.App.Put("/api/links/:slug", linkHandler.Update)
	s.App.Delete("/api/links/:slug", linkHandler.Delete)

	// Greeting templates API
	s.App.Get("/api/templates", templateHandler.List)
	s.App.Post("/api/templates", templateHandler.Create)
	s.App.Delete("/api/templates/:name", templateHandler.Delete)

	// Uploads
	s.App.Post("/api/upload", uploadHandler.Upload)
	s.App.Get("/uploads/*", static.New(s.Cfg.UploadDir))

	// Personalized pages
	s.App.Get("/p/:slug", pageHandler.Show)

	// Operations
	s.App.Get("/healthz", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Admin panel and static assets - must be last (catch-all)
	s.App.Get("/admin", func(c fiber.Ctx) error {
		return c.SendFile("./static/admin.html")
	})
	s.App.Use(static.New("./static"))
}
