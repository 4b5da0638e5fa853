package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Sehar1999/applicant-tracking-system/internal/models"
)

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := cfg.GetDatabaseDSN()

	logLevel := logger.Silent
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("✅ Database connected successfully")

	// Auto migrate
	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Attachment{},
		&models.JobDescription{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedRoles(db); err != nil {
		return nil, fmt.Errorf("failed to seed roles: %w", err)
	}

	log.Println("✅ Database migration completed")

	return db, nil
}

// seedRoles makes sure the two built-in roles exist.
func seedRoles(db *gorm.DB) error {
	for _, name := range []string{models.RoleRecruiter, models.RoleApplicant} {
		var role models.Role
		err := db.Where("name = ?", name).First(&role).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&models.Role{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
