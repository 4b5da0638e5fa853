package models

import "time"

const (
	FileTypeCV      = "cv"
	FileTypeProfile = "profile"

	// AttachableTypeUser is the only attachable owner type in use today.
	AttachableTypeUser = "User"
)

// Attachment is a stored-document record pointing at a blob in external
// storage. The blob locator is opaque; the original filename is not kept.
type Attachment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FileURL        string    `gorm:"type:text;not null;column:file_url" json:"file_url"`
	FileType       string    `gorm:"type:text;not null" json:"file_type"`
	AttachableID   uint      `gorm:"not null" json:"attachable_id"`
	AttachableType string    `gorm:"type:text;not null" json:"attachable_type"`
	UploadedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"uploaded_at"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Attachment) TableName() string {
	return "attachments"
}
