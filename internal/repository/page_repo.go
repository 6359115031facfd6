package repository

import (
	"errors"
	"time"

	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"gorm.io/gorm"
)

// PageRepository page data access, organization-scoped except for the
// cross-tenant due scan used by the batch publisher
type PageRepository interface {
	FindByID(id, organizationID uint64) (*domain.Page, error)
	List(organizationID uint64, page, limit int) ([]*domain.Page, int64, error)
	Create(page *domain.Page) error
	Save(page *domain.Page) error
	Delete(id, organizationID uint64) error

	Schedule(id, organizationID uint64, at time.Time) (*domain.Page, error)
	Unschedule(id, organizationID uint64) (*domain.Page, error)
	FindDue(now time.Time) ([]*domain.Page, error)
	PublishDue(now time.Time) (int64, error)
	FindUpcoming(organizationID uint64, limit int) ([]*domain.Page, error)
}

type pageRepository struct {
	db *gorm.DB
}

// NewPageRepository creates a new PageRepository
func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) FindByID(id, organizationID uint64) (*domain.Page, error) {
	var page domain.Page
	err := r.db.Where("id = ? AND organization_id = ?", id, organizationID).First(&page).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrPageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) List(organizationID uint64, page, limit int) ([]*domain.Page, int64, error) {
	var pages []*domain.Page
	var total int64

	query := r.db.Model(&domain.Page{}).Where("organization_id = ?", organizationID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&pages).Error
	return pages, total, err
}

func (r *pageRepository) Create(page *domain.Page) error {
	return r.db.Create(page).Error
}

func (r *pageRepository) Save(page *domain.Page) error {
	return r.db.Save(page).Error
}

func (r *pageRepository) Delete(id, organizationID uint64) error {
	result := r.db.Where("id = ? AND organization_id = ?", id, organizationID).Delete(&domain.Page{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrPageNotFound
	}
	return nil
}

func (r *pageRepository) Schedule(id, organizationID uint64, at time.Time) (*domain.Page, error) {
	page, err := r.FindByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	page.Status = domain.StatusScheduled
	page.ScheduledAt = &at
	if err := r.db.Save(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

func (r *pageRepository) Unschedule(id, organizationID uint64) (*domain.Page, error) {
	page, err := r.FindByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	page.Status = domain.StatusDraft
	page.ScheduledAt = nil
	if err := r.db.Save(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

func (r *pageRepository) FindDue(now time.Time) ([]*domain.Page, error) {
	var pages []*domain.Page
	err := r.db.
		Where("status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", domain.StatusScheduled, now).
		Find(&pages).Error
	return pages, err
}

// PublishDue flips every due row in one set-based update; safe to re-run
// because published rows no longer match the WHERE clause.
func (r *pageRepository) PublishDue(now time.Time) (int64, error) {
	result := r.db.Model(&domain.Page{}).
		Where("status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", domain.StatusScheduled, now).
		Updates(map[string]interface{}{
			"status":       domain.StatusPublished,
			"published_at": now,
			"scheduled_at": nil,
		})
	return result.RowsAffected, result.Error
}

func (r *pageRepository) FindUpcoming(organizationID uint64, limit int) ([]*domain.Page, error) {
	var pages []*domain.Page
	err := r.db.
		Where("organization_id = ? AND status = ?", organizationID, domain.StatusScheduled).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&pages).Error
	return pages, err
}
