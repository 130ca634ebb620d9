package model

import (
	"time"

	"gorm.io/datatypes"
)

// GalleryImageModel is the GORM model for published photos.
type GalleryImageModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	ImageURL    string    `gorm:"type:text;not null"`
	Category    string    `gorm:"type:varchar(100);index;not null"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (GalleryImageModel) TableName() string {
	return "gallery_images"
}

// ServiceModel is the GORM model for service packages. Details keeps the raw JSON document.
type ServiceModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description *string        `gorm:"type:text"`
	Price       int64          `gorm:"not null"`
	Duration    *string        `gorm:"type:varchar(100)"`
	Details     datatypes.JSON `gorm:"type:jsonb"`
}

func (ServiceModel) TableName() string {
	return "services"
}
