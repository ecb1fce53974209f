package models

import "time"

// ContactMessage is an unauthenticated contact-form submission. Rows are
// append-only; nothing in the API reads them back.
type ContactMessage struct {
	ID        int       `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
