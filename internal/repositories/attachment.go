package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Sehar1999/applicant-tracking-system/internal/models"
)

type AttachmentRepository interface {
	Create(attachment *models.Attachment) error
	FindOwned(id uint, ownerID uint, fileType string) (*models.Attachment, error)
	FindOwnedAny(id uint, ownerID uint) (*models.Attachment, error)
	ListOwned(ownerID uint, fileType string) ([]models.Attachment, error)
	FindProfile(ownerID uint) (*models.Attachment, error)
	UpdateFileURL(id uint, fileURL string) error
	Delete(id uint) error
}

type attachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

// Create implements AttachmentRepository.
func (a *attachmentRepository) Create(attachment *models.Attachment) error {
	if err := a.db.Create(attachment).Error; err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	return nil
}

// FindOwned implements AttachmentRepository. Ownership is checked in the
// query itself so a foreign id behaves exactly like a missing one.
func (a *attachmentRepository) FindOwned(id uint, ownerID uint, fileType string) (*models.Attachment, error) {
	var attachment models.Attachment
	err := a.db.Where(
		"id = ? AND attachable_id = ? AND attachable_type = ? AND file_type = ?",
		id, ownerID, models.AttachableTypeUser, fileType,
	).First(&attachment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("attachment not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}

	return &attachment, nil
}

// FindOwnedAny implements AttachmentRepository. Like FindOwned but without a
// file-type restriction.
func (a *attachmentRepository) FindOwnedAny(id uint, ownerID uint) (*models.Attachment, error) {
	var attachment models.Attachment
	err := a.db.Where(
		"id = ? AND attachable_id = ? AND attachable_type = ?",
		id, ownerID, models.AttachableTypeUser,
	).First(&attachment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("attachment not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}

	return &attachment, nil
}

// ListOwned implements AttachmentRepository.
func (a *attachmentRepository) ListOwned(ownerID uint, fileType string) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := a.db.Where(
		"attachable_id = ? AND attachable_type = ? AND file_type = ?",
		ownerID, models.AttachableTypeUser, fileType,
	).Order("uploaded_at DESC").Find(&attachments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	return attachments, nil
}

// FindProfile implements AttachmentRepository.
func (a *attachmentRepository) FindProfile(ownerID uint) (*models.Attachment, error) {
	var attachment models.Attachment
	err := a.db.Where(
		"attachable_id = ? AND attachable_type = ? AND file_type = ?",
		ownerID, models.AttachableTypeUser, models.FileTypeProfile,
	).First(&attachment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("attachment not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find profile attachment: %w", err)
	}

	return &attachment, nil
}

// UpdateFileURL implements AttachmentRepository. Used only for the
// profile-picture replacement case.
func (a *attachmentRepository) UpdateFileURL(id uint, fileURL string) error {
	err := a.db.Model(&models.Attachment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"file_url":    fileURL,
			"uploaded_at": time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update attachment: %w", err)
	}

	return nil
}

// Delete implements AttachmentRepository.
func (a *attachmentRepository) Delete(id uint) error {
	if err := a.db.Delete(&models.Attachment{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	return nil
}
