package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"yearbook/internal/models"
)

// demoMessages is the fixed demonstration batch inserted by /api/seed.
var demoMessages = []models.Message{
	{Name: "Thao_Mai_Pro", Msg: "Stay golden, besties <3 Don't you dare forget me after graduation!"},
	{Name: "Boiz_Downtown", Msg: "Class 12 forever, no cap! What are we? Family!"},
	{Name: "Shark_Hung", Msg: "Wishing everyone gets rich fast. Remember to donate when you do :v"},
	{Name: "Ngoc_Han_Fancy", Msg: "Keep in touch after graduation, anyone who leaves me on read gets blocked =))"},
	{Name: "Dung_Hacker", Msg: "Flexing this sweet yearbook entry. May your code ship with zero bugs!"},
	{Name: "Class_President", Msg: "Ten-year reunion or else! Everyone better show up, no excuses."},
	{Name: "Nhung_Baby", Msg: "Thank you, youth, for letting me meet you all. Love you so much <3"},
	{Name: "Khanh_Sky", Msg: "So proud of us! Wishing everyone strength for the road ahead."},
	{Name: "The_Ex_Club", Msg: "Friends this life, friends the next! Never forget skipping class for the arcade."},
	{Name: "Anon_Gamer", Msg: "GGWP! This game ends so a new map can load. Good luck have fun everyone!"},
}

// Seed bulk-inserts the demonstration batch with today's date stamped on
// each record. Idempotent by call, not by content: repeated calls prepend
// repeated batches and rely on the retention cap.
func (h *MessageHandler) Seed(c fiber.Ctx) error {
	today := time.Now().Format(timeLayout)

	batch := make([]models.Message, len(demoMessages))
	for i, m := range demoMessages {
		m.Time = today
		batch[i] = m
	}

	if err := h.store.Seed(c.Context(), batch); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status": "seeded",
		"count":  len(batch),
	})
}
