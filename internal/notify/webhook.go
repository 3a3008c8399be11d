// Package notify posts new-message notifications to a Discord-compatible
// webhook.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Embed colors: blue for public messages, red for private ones.
const (
	colorPublic  = 5797887
	colorPrivate = 16711680
)

type webhookField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type webhookEmbed struct {
	Title  string         `json:"title"`
	Color  int            `json:"color"`
	Fields []webhookField `json:"fields"`
	Footer struct {
		Text string `json:"text"`
	} `json:"footer"`
}

type webhookPayload struct {
	Embeds []webhookEmbed `json:"embeds"`
}

// Notifier delivers webhook notifications. A zero webhook URL disables it.
type Notifier struct {
	webhookURL string
	client     *http.Client
}

// New creates a notifier for the given webhook URL.
func New(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// IsEnabled reports whether a webhook URL is configured.
func (n *Notifier) IsEnabled() bool {
	return n.webhookURL != ""
}

// MessagePosted sends the notification asynchronously (fire and forget with
// logging). Delivery failures never reach the caller.
func (n *Notifier) MessagePosted(name, msg string, isPublic bool) {
	if !n.IsEnabled() {
		return
	}
	go func() {
		if err := n.Send(name, msg, isPublic); err != nil {
			log.Printf("Failed to send webhook notification: %v", err)
		}
	}()
}

// Send posts the notification synchronously.
func (n *Notifier) Send(name, msg string, isPublic bool) error {
	embed := webhookEmbed{
		Title: "New Yearbook Message!",
		Color: colorPublic,
		Fields: []webhookField{
			{Name: "From", Value: "**" + name + "**", Inline: true},
			{Name: "Message", Value: msg},
			{Name: "Visibility", Value: "Public", Inline: true},
		},
	}
	if !isPublic {
		embed.Title = "New PRIVATE Yearbook Message!"
		embed.Color = colorPrivate
		embed.Fields[2].Value = "Private"
	}
	embed.Footer.Text = "Yearbook Notification System"

	body, err := json.Marshal(webhookPayload{Embeds: []webhookEmbed{embed}})
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
