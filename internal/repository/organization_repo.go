package repository

import (
	"errors"

	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"gorm.io/gorm"
)

// OrganizationRepository tenant data access
type OrganizationRepository interface {
	FindByID(id uint64) (*domain.Organization, error)
	FindBySlug(slug string) (*domain.Organization, error)
	Create(org *domain.Organization) error
}

type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) FindByID(id uint64) (*domain.Organization, error) {
	var org domain.Organization
	err := r.db.First(&org, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) FindBySlug(slug string) (*domain.Organization, error) {
	var org domain.Organization
	err := r.db.Where("slug = ?", slug).First(&org).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) Create(org *domain.Organization) error {
	return r.db.Create(org).Error
}
