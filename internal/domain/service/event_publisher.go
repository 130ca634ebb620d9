package service

import (
	"context"
	"time"
)

// Event types published after a public form creates a record.
const (
	EventContactSubmitted     = "contact.submitted"
	EventBookingCreated       = "booking.created"
	EventOrderCreated         = "order.created"
	EventTestimonialSubmitted = "testimonial.submitted"
)

// StudioEvent tells downstream consumers (mail, chat notifications) that a record was created
type StudioEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	EntityID   int64     `json:"entity_id"`
	Summary    string    `json:"summary"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends a single event and waits for the broker to accept it
	Publish(ctx context.Context, event *StudioEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
