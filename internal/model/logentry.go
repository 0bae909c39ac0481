package model

import "time"

// LogEntry is one unit of work reported by a user for a given date.
// Rows are never removed; SoftDeleted marks an entry as logically absent.
type LogEntry struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"column:user_id;not null;index"`
	User          User      `gorm:"foreignKey:UserID"`
	Title         string    `gorm:"column:title;size:255;not null"`
	Description   string    `gorm:"column:description;size:500;not null"`
	Completed     bool      `gorm:"column:completed;default:false;not null"`
	Date          time.Time `gorm:"column:date;type:date;not null"`
	AttachmentURL string    `gorm:"column:attachment_url;not null"`
	SoftDeleted   bool      `gorm:"column:soft_deleted;default:false;not null"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (LogEntry) TableName() string {
	return "log_entries"
}
