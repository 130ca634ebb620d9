package entity

import "time"

// Default order states. Both fields stay open strings; no transition rules are enforced.
const (
	OrderStatusPending  = "pending"
	PaymentStatusUnpaid = "unpaid"
)

// Order is a purchase of a service. UserID and ServiceID are not checked for existence.
type Order struct {
	ID            int64      `json:"id"`
	UserID        *int64     `json:"user_id"`
	ServiceID     *int64     `json:"service_id"`
	SessionDate   *time.Time `json:"session_date"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	Amount        *int64     `json:"amount"`
	CreatedAt     time.Time  `json:"created_at"`
}
