package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Sehar1999/applicant-tracking-system/internal/models"
)

type JobDescriptionRepository interface {
	Create(jd *models.JobDescription) error
	FindOwned(id uint, ownerID uint) (*models.JobDescription, error)
	ListOwned(ownerID uint) ([]models.JobDescription, error)
	Update(jd *models.JobDescription) error
	Delete(id uint) error
}

type jobDescriptionRepository struct {
	db *gorm.DB
}

func NewJobDescriptionRepository(db *gorm.DB) JobDescriptionRepository {
	return &jobDescriptionRepository{db: db}
}

// Create implements JobDescriptionRepository.
func (j *jobDescriptionRepository) Create(jd *models.JobDescription) error {
	if err := j.db.Create(jd).Error; err != nil {
		return fmt.Errorf("failed to create job description: %w", err)
	}

	return nil
}

// FindOwned implements JobDescriptionRepository.
func (j *jobDescriptionRepository) FindOwned(id uint, ownerID uint) (*models.JobDescription, error) {
	var jd models.JobDescription
	if err := j.db.Where("id = ? AND user_id = ?", id, ownerID).First(&jd).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job description not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find job description: %w", err)
	}

	return &jd, nil
}

// ListOwned implements JobDescriptionRepository.
func (j *jobDescriptionRepository) ListOwned(ownerID uint) ([]models.JobDescription, error) {
	var jds []models.JobDescription
	if err := j.db.Where("user_id = ?", ownerID).Order("created_at DESC").Find(&jds).Error; err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}

	return jds, nil
}

// Update implements JobDescriptionRepository.
func (j *jobDescriptionRepository) Update(jd *models.JobDescription) error {
	if err := j.db.Save(jd).Error; err != nil {
		return fmt.Errorf("failed to update job description: %w", err)
	}

	return nil
}

// Delete implements JobDescriptionRepository.
func (j *jobDescriptionRepository) Delete(id uint) error {
	if err := j.db.Delete(&models.JobDescription{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete job description: %w", err)
	}

	return nil
}
