package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"yearbook/internal/cache"
	"yearbook/internal/links"
	"yearbook/internal/models"
	"yearbook/internal/testutil"
)

func newLinkTestApp(t *testing.T) *fiber.App {
	t.Helper()
	stores := testutil.TempStores(t)
	h := NewLinkHandler(links.NewResolver(stores.Links), cache.NewPages("", 0))

	app := fiber.New()
	app.Get("/api/links", h.List)
	app.Post("/api/links", h.Create)
	app.Put("/api/links/:slug", h.Update)
	app.Delete("/api/links/:slug", h.Delete)
	return app
}

func TestLinkCreateAndList(t *testing.T) {
	app := newLinkTestApp(t)

	resp := postJSON(t, app, "/api/links", `{"recipient_name":"Mai Anh","message":"see you at the reunion"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Status string      `json:"status"`
		Link   models.Link `json:"link"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Status != "success" {
		t.Errorf("status field = %q, want success", body.Status)
	}
	if body.Link.Slug != "mai-anh" {
		t.Errorf("slug = %q, want mai-anh", body.Link.Slug)
	}
	if body.Link.SenderName != links.DefaultSender {
		t.Errorf("sender = %q, want the default", body.Link.SenderName)
	}

	all := getJSON[[]models.Link](t, app, "/api/links")
	if len(all) != 1 || all[0].Slug != "mai-anh" {
		t.Errorf("list = %+v, want the created link", all)
	}
}

func TestLinkCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing recipient", `{"message":"hi"}`, "recipient_name is required"},
		{"missing message", `{"recipient_name":"Mai"}`, "message is required"},
		{"blank recipient", `{"recipient_name":"   ","message":"hi"}`, "recipient_name is required"},
		{"invalid json", `not json`, "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newLinkTestApp(t)
			resp := postJSON(t, app, "/api/links", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			var body map[string]string
			json.NewDecoder(resp.Body).Decode(&body)
			if body["error"] != tt.wantMsg {
				t.Errorf("error = %q, want %q", body["error"], tt.wantMsg)
			}
		})
	}
}

func TestLinkUpdate(t *testing.T) {
	app := newLinkTestApp(t)
	postJSON(t, app, "/api/links", `{"recipient_name":"Tuan","message":"original"}`)

	req := httptest.NewRequest(http.MethodPut, "/api/links/tuan",
		strings.NewReader(`{"message":"updated text","slug":"hijack","sender_name":"Class of 2026"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	all := getJSON[[]models.Link](t, app, "/api/links")
	if len(all) != 1 {
		t.Fatalf("got %d links, want 1", len(all))
	}
	got := all[0]
	if got.Message != "updated text" || got.SenderName != "Class of 2026" {
		t.Errorf("update not applied: %+v", got)
	}
	// The slug is the identity and ignores attempted rewrites.
	if got.Slug != "tuan" {
		t.Errorf("slug = %q, want tuan", got.Slug)
	}
}

func TestLinkUpdateUnknownSlug(t *testing.T) {
	app := newLinkTestApp(t)

	req := httptest.NewRequest(http.MethodPut, "/api/links/nobody", strings.NewReader(`{"message":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestLinkDelete(t *testing.T) {
	app := newLinkTestApp(t)
	postJSON(t, app, "/api/links", `{"recipient_name":"Tuan","message":"hi"}`)

	req := httptest.NewRequest(http.MethodDelete, "/api/links/tuan", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	if body["status"] != "deleted" {
		t.Errorf("status field = %q, want deleted", body["status"])
	}

	if all := getJSON[[]models.Link](t, app, "/api/links"); len(all) != 0 {
		t.Errorf("link still listed after delete: %+v", all)
	}

	// Second delete finds nothing.
	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/links/tuan", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("repeat delete status = %d, want 404", resp.StatusCode)
	}
}
