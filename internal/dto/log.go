package dto

import "time"

// LogEntryRequest is used by both create and update. Update has full-replace
// semantics: omitted fields fall back to their zero values, not to the stored
// ones.
type LogEntryRequest struct {
	Title         string `json:"title" binding:"required,max=255"`
	Description   string `json:"description" binding:"required,max=500"`
	Completed     bool   `json:"completed"`
	Date          string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	AttachmentURL string `json:"attachment_url" binding:"omitempty,url"`
}

type LogEntryResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Completed     bool      `json:"completed"`
	Date          string    `json:"date"`
	AttachmentURL string    `json:"attachment_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DeleteLogResponse struct {
	Deleted bool `json:"deleted"`
	ID      uint `json:"id"`
}

type StatsResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}
