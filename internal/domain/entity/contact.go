package entity

import "time"

// ContactSubmission is a message left through the contact form.
type ContactSubmission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Service   *string   `json:"service"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
