package model

import "time"

// ResetToken is carried over from the original schema. No endpoint writes it;
// the password reset flow is out of scope.
type ResetToken struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"column:user_id;not null"`
	User      User      `gorm:"foreignKey:UserID"`
	TokenHash string    `gorm:"column:token_hash;size:128;uniqueIndex"`
	Used      bool      `gorm:"column:used;default:false"`
	CreatedAt time.Time `gorm:"column:created_at"`
}
