package models

// Link is a personalization record for an invitation page. The slug is the
// primary key and stays unique among live links.
type Link struct {
	Slug          string `json:"slug"`
	RecipientName string `json:"recipient_name"`
	SenderName    string `json:"sender_name"`
	Message       string `json:"message"`
	PageTitle     string `json:"page_title"`
	Subtitle      string `json:"subtitle"`
	OGImage       string `json:"og_image"`
	CreatedAt     string `json:"created_at"`
}

// LinkMutableFields lists the JSON fields a PUT /api/links/:slug may change.
// The slug itself and created_at are immutable.
var LinkMutableFields = []string{
	"recipient_name",
	"sender_name",
	"message",
	"page_title",
	"subtitle",
	"og_image",
}
