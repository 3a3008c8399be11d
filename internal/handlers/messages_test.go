package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"yearbook/internal/models"
	"yearbook/internal/notify"
	"yearbook/internal/testutil"
)

func newMessageTestApp(t *testing.T) (*fiber.App, *MessageHandler) {
	t.Helper()
	stores := testutil.TempStores(t)
	h := NewMessageHandler(stores.Messages, notify.New(""))

	app := fiber.New()
	app.Get("/api/messages", h.List)
	app.Post("/api/messages", h.Create)
	app.Post("/api/seed", h.Seed)
	return app, h
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func getJSON[T any](t *testing.T, app *fiber.App, path string) T {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s status = %d", path, resp.StatusCode)
	}
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestCreateMessageAndList(t *testing.T) {
	app, _ := newMessageTestApp(t)

	resp := postJSON(t, app, "/api/messages", `{"name":"Mai","msg":"hello everyone"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Status string           `json:"status"`
		Data   []models.Message `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Status != "success" {
		t.Errorf("status field = %q, want success", body.Status)
	}
	if len(body.Data) != 1 || body.Data[0].Name != "Mai" {
		t.Fatalf("data = %+v, want the new message", body.Data)
	}
	if body.Data[0].Time == "" {
		t.Error("time was not defaulted")
	}

	msgs := getJSON[[]models.Message](t, app, "/api/messages")
	if len(msgs) != 1 || msgs[0].Msg != "hello everyone" {
		t.Errorf("list = %+v, want the stored message", msgs)
	}
}

func TestCreateMessageValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"msg":"hello"}`},
		{"missing msg", `{"name":"Mai"}`},
		{"whitespace only", `{"name":"  ","msg":"hello"}`},
		{"invalid json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newMessageTestApp(t)
			resp := postJSON(t, app, "/api/messages", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			var body map[string]string
			json.NewDecoder(resp.Body).Decode(&body)
			if body["error"] == "" {
				t.Error("error message missing from response")
			}
		})
	}
}

func TestCreateMessageRejectsProfanity(t *testing.T) {
	app, _ := newMessageTestApp(t)

	resp := postJSON(t, app, "/api/messages", `{"name":"someone","msg":"you are so NGU lol"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(raw), "error") {
		t.Errorf("response %s lacks the error shape", raw)
	}

	// The rejected message never shows up in the listing.
	msgs := getJSON[[]models.Message](t, app, "/api/messages")
	if len(msgs) != 0 {
		t.Errorf("rejected message was stored: %+v", msgs)
	}
}

func TestListFiltersPrivateMessages(t *testing.T) {
	app, h := newMessageTestApp(t)

	ctx := t.Context()
	if err := h.store.Insert(ctx, models.Message{Name: "pub", Msg: "hi", Time: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := h.store.Insert(ctx, models.Message{Name: "priv", Msg: "psst", Time: "x", IsPublic: testutil.BoolPtr(false)}); err != nil {
		t.Fatal(err)
	}
	if err := h.store.Insert(ctx, models.Message{Name: "explicit-pub", Msg: "hey", Time: "x", IsPublic: testutil.BoolPtr(true)}); err != nil {
		t.Fatal(err)
	}

	msgs := getJSON[[]models.Message](t, app, "/api/messages")
	if len(msgs) != 2 {
		t.Fatalf("got %d public messages, want 2: %+v", len(msgs), msgs)
	}
	for _, m := range msgs {
		if m.Name == "priv" {
			t.Error("private message leaked into the public listing")
		}
	}
	// Newest first.
	if msgs[0].Name != "explicit-pub" || msgs[1].Name != "pub" {
		t.Errorf("order = [%s, %s], want newest first", msgs[0].Name, msgs[1].Name)
	}
}

func TestSeedStampsTodayAndReportsCount(t *testing.T) {
	app, _ := newMessageTestApp(t)

	resp := postJSON(t, app, "/api/seed", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Status != "seeded" || body.Count != len(demoMessages) {
		t.Errorf("seed response = %+v", body)
	}

	msgs := getJSON[[]models.Message](t, app, "/api/messages")
	if len(msgs) != len(demoMessages) {
		t.Fatalf("got %d messages, want %d", len(msgs), len(demoMessages))
	}
	for _, m := range msgs {
		if m.Time == "" {
			t.Errorf("seeded message %q has no date stamp", m.Name)
		}
	}
	// Batch order preserved: first demo message is newest.
	if msgs[0].Name != demoMessages[0].Name {
		t.Errorf("first message = %q, want %q", msgs[0].Name, demoMessages[0].Name)
	}
}
