package entity

import "time"

// GalleryImage is a published photo. Category is free text.
type GalleryImage struct {
	ID          int64     `json:"id"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
