package models

import "time"

// Notification has two independent boolean axes: read-state and
// visibility. Cleared notifications are hidden from the inbox but the
// rows persist.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"notification_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	IsCleared bool      `gorm:"default:false" json:"is_cleared"`
	CreatedAt time.Time `json:"date_created"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
