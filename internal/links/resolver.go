// Package links resolves personalized invitation links by slug and owns
// slug generation and uniqueness.
package links

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"yearbook/internal/models"
	"yearbook/internal/store"
)

// Defaults applied when a link is created without optional fields.
const (
	DefaultSender   = "Friend"
	DefaultSubtitle = "Youth passes like a summer rain. Let's hold on to the brightest moments of our school days before we each go our separate ways..."
)

// CreateParams carries the caller-supplied fields for a new link. Only
// RecipientName and Message are required.
type CreateParams struct {
	RecipientName string
	Message       string
	CustomSlug    string
	PageTitle     string
	SenderName    string
	Subtitle      string
	OGImage       string
}

// Resolver maps slugs to personalization records on top of a record
// collection.
type Resolver struct {
	store store.Collection[models.Link]
}

// NewResolver creates a resolver over the given link collection.
func NewResolver(c store.Collection[models.Link]) *Resolver {
	return &Resolver{store: c}
}

// All returns every link, newest first.
func (r *Resolver) All(ctx context.Context) []models.Link {
	return r.store.GetAll(ctx)
}

// GetBySlug returns the link for slug, if one exists.
func (r *Resolver) GetBySlug(ctx context.Context, slug string) (models.Link, bool) {
	for _, link := range r.store.GetAll(ctx) {
		if link.Slug == slug {
			return link, true
		}
	}
	return models.Link{}, false
}

// Create builds a link record with defaults applied and stores it. A custom
// slug is used verbatim as the base; otherwise one is derived from the
// recipient name. A base slug that already names a live record gets a
// random 3-digit suffix. The collision check runs once: the suffixed slug
// is not re-checked, so a second collision remains possible in rare cases.
func (r *Resolver) Create(ctx context.Context, p CreateParams) (models.Link, error) {
	slug := strings.TrimSpace(p.CustomSlug)
	if slug == "" {
		slug = GenerateSlug(p.RecipientName)
	}
	if _, exists := r.GetBySlug(ctx, slug); exists {
		slug = fmt.Sprintf("%s-%d", slug, 100+rand.IntN(900))
	}

	link := models.Link{
		Slug:          slug,
		RecipientName: p.RecipientName,
		SenderName:    orDefault(p.SenderName, DefaultSender),
		Message:       p.Message,
		PageTitle:     orDefault(p.PageTitle, "Invitation for "+p.RecipientName),
		Subtitle:      orDefault(p.Subtitle, DefaultSubtitle),
		OGImage:       p.OGImage,
		CreatedAt:     time.Now().Format(time.RFC3339),
	}

	if err := r.store.Insert(ctx, link); err != nil {
		return models.Link{}, err
	}
	return link, nil
}

// Update merges the allow-listed fields from patch into the link matching
// slug. Fields outside the allow-list are dropped silently. The boolean
// reports whether the slug matched a live link.
func (r *Resolver) Update(ctx context.Context, slug string, patch map[string]any) (bool, error) {
	allowed := make(map[string]any, len(patch))
	for _, field := range models.LinkMutableFields {
		if v, ok := patch[field]; ok {
			allowed[field] = v
		}
	}
	return r.store.Update(ctx, slug, allowed)
}

// Delete removes the link matching slug.
func (r *Resolver) Delete(ctx context.Context, slug string) (bool, error) {
	return r.store.Delete(ctx, slug)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
