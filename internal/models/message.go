package models

// Message is a single guestbook entry. Messages are never mutated after
// insertion; the oldest entries are evicted once the collection exceeds its
// retention cap.
type Message struct {
	Name     string `json:"name"`
	Msg      string `json:"msg"`
	Time     string `json:"time"`
	IsPublic *bool  `json:"is_public,omitempty"`
}

// Visible reports whether the message appears in public listings. A missing
// is_public field defaults to public.
func (m Message) Visible() bool {
	return m.IsPublic == nil || *m.IsPublic
}
