package entity

import "time"

// Testimonial is a client review. It is hidden from the public site until approved.
type Testimonial struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Service    *string   `json:"service"`
	Quote      string    `json:"quote"`
	Rating     int       `json:"rating"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}
