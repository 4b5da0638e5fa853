package models

import "time"

// JobDescription is a recruiter-owned free-text role description. The body is
// replaced wholesale on edit.
type JobDescription struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (JobDescription) TableName() string {
	return "job_descriptions"
}
