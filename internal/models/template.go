package models

// Template is a reusable greeting text, keyed by name. Templates are created
// and deleted whole; there is no update operation.
type Template struct {
	Name      string `json:"name"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
