package model

import "time"

// OrderModel is the GORM model for service orders.
type OrderModel struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	UserID        *int64     `gorm:"index"`
	ServiceID     *int64     `gorm:"column:service_id"`
	SessionDate   *time.Time `gorm:"column:session_date"`
	Status        string     `gorm:"type:varchar(50);not null;default:pending"`
	PaymentStatus string     `gorm:"type:varchar(50);not null;default:unpaid"`
	Amount        *int64     `gorm:"column:amount"`
	CreatedAt     time.Time  `gorm:"not null"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// All returns every model managed by the postgres driver, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&GalleryImageModel{},
		&ServiceModel{},
		&ContactSubmissionModel{},
		&OrderModel{},
		&TestimonialModel{},
		&BookingModel{},
	}
}
