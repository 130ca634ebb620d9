package entity

import "encoding/json"

// Service is a bookable photography package. Price is in minor currency units.
type Service struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       int64           `json:"price"`
	Duration    *string         `json:"duration"`
	Details     json.RawMessage `json:"details"`
}
