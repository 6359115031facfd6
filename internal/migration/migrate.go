package migration

import (
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/quillcms/quill-backend/internal/domain"
	"github.com/quillcms/quill-backend/pkg/logger"
)

// Run executes AutoMigrate for all tables and seeds a default
// organization and admin account if the database is empty.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Organization{},
		&domain.User{},
		&domain.Post{},
		&domain.Page{},
		&domain.Product{},
		&domain.Revision{},
	); err != nil {
		return err
	}

	var count int64
	db.Model(&domain.Organization{}).Count(&count)
	if count == 0 {
		return seedDefaults(db)
	}

	return nil
}

func seedDefaults(db *gorm.DB) error {
	org := domain.Organization{
		Name: "Default Organization",
		Slug: "default",
	}
	if err := db.Create(&org).Error; err != nil {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
		logger.Warn("seeding admin user with default password, set ADMIN_PASSWORD before production use")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := domain.User{
		Email:          "admin@example.com",
		PasswordHash:   string(hash),
		Name:           "Administrator",
		Role:           "super_admin",
		OrganizationID: org.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("seeded default organization %d and admin user %d", org.ID, admin.ID)
	return nil
}
