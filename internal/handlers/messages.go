package handlers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v3"

	"yearbook/internal/metrics"
	"yearbook/internal/models"
	"yearbook/internal/notify"
	"yearbook/internal/store"
	"yearbook/internal/validation"
)

// timeLayout is the display date stamped on messages submitted without one.
const timeLayout = "02/01/2006"

// MessageHandler handles guestbook message endpoints.
type MessageHandler struct {
	store    store.Collection[models.Message]
	notifier *notify.Notifier
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(c store.Collection[models.Message], notifier *notify.Notifier) *MessageHandler {
	return &MessageHandler{store: c, notifier: notifier}
}

// publicOnly filters out private messages. The result is never nil so the
// JSON response is always an array.
func publicOnly(msgs []models.Message) []models.Message {
	public := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Visible() {
			public = append(public, m)
		}
	}
	return public
}

// List returns public messages, newest first.
func (h *MessageHandler) List(c fiber.Ctx) error {
	return c.JSON(publicOnly(h.store.GetAll(c.Context())))
}

// Create validates and stores a new message, returns the updated public
// list, and fires the webhook notification in the background.
func (h *MessageHandler) Create(c fiber.Ctx) error {
	var msg models.Message
	if err := json.Unmarshal(c.Body(), &msg); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if !validation.RequireNonEmpty(msg.Name, msg.Msg) {
		metrics.MessagesRejected.WithLabelValues("missing_fields").Inc()
		return jsonError(c, fiber.StatusBadRequest, "name and msg are required")
	}

	if validation.ContainsProfanity(msg.Name) || validation.ContainsProfanity(msg.Msg) {
		metrics.MessagesRejected.WithLabelValues("profanity").Inc()
		return jsonError(c, fiber.StatusBadRequest, "message contains inappropriate language, please keep it polite")
	}

	if msg.Time == "" {
		msg.Time = time.Now().Format(timeLayout)
	}

	if err := h.store.Insert(c.Context(), msg); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	metrics.MessagesSubmitted.Inc()

	h.notifier.MessagePosted(msg.Name, msg.Msg, msg.Visible())

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   publicOnly(h.store.GetAll(c.Context())),
	})
}
