package entity

import "time"

// Booking is a session request from the booking form, optionally with a payment confirmation file.
type Booking struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	Service   string    `json:"service"`
	Notes     *string   `json:"notes"`
	FileURL   *string   `json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
}
