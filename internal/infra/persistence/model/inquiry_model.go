package model

import "time"

// ContactSubmissionModel is the GORM model for contact form messages.
type ContactSubmissionModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     *string   `gorm:"type:varchar(50)"`
	Service   *string   `gorm:"type:varchar(255)"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (ContactSubmissionModel) TableName() string {
	return "contact_submissions"
}

// TestimonialModel is the GORM model for client reviews.
type TestimonialModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Service    *string   `gorm:"type:varchar(255)"`
	Quote      string    `gorm:"type:text;not null"`
	Rating     int       `gorm:"not null"`
	IsApproved bool      `gorm:"index;not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (TestimonialModel) TableName() string {
	return "testimonials"
}

// BookingModel is the GORM model for booking requests.
type BookingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(50);not null"`
	Date      string    `gorm:"type:varchar(10);not null"`
	Time      string    `gorm:"type:varchar(20);not null"`
	Location  string    `gorm:"type:varchar(255);not null"`
	Service   string    `gorm:"type:varchar(255);not null"`
	Notes     *string   `gorm:"type:text"`
	FileURL   *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

func (BookingModel) TableName() string {
	return "bookings"
}
