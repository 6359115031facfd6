package repository

import (
	"errors"
	"time"

	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"gorm.io/gorm"
)

// ProductRepository product data access, organization-scoped except for
// the cross-tenant due scan used by the batch publisher
type ProductRepository interface {
	FindByID(id, organizationID uint64) (*domain.Product, error)
	List(organizationID uint64, page, limit int) ([]*domain.Product, int64, error)
	Create(product *domain.Product) error
	Save(product *domain.Product) error
	Delete(id, organizationID uint64) error

	Schedule(id, organizationID uint64, at time.Time) (*domain.Product, error)
	Unschedule(id, organizationID uint64) (*domain.Product, error)
	FindDue(now time.Time) ([]*domain.Product, error)
	ActivateDue(now time.Time) (int64, error)
	FindUpcoming(organizationID uint64, limit int) ([]*domain.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindByID(id, organizationID uint64) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("id = ? AND organization_id = ?", id, organizationID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(organizationID uint64, page, limit int) ([]*domain.Product, int64, error) {
	var products []*domain.Product
	var total int64

	query := r.db.Model(&domain.Product{}).Where("organization_id = ?", organizationID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	return products, total, err
}

func (r *productRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) Save(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id, organizationID uint64) error {
	result := r.db.Where("id = ? AND organization_id = ?", id, organizationID).Delete(&domain.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) Schedule(id, organizationID uint64, at time.Time) (*domain.Product, error) {
	product, err := r.FindByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	product.Status = domain.StatusScheduled
	product.ScheduledAt = &at
	if err := r.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepository) Unschedule(id, organizationID uint64) (*domain.Product, error) {
	product, err := r.FindByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	product.Status = domain.StatusDraft
	product.ScheduledAt = nil
	if err := r.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepository) FindDue(now time.Time) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.db.
		Where("status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", domain.StatusScheduled, now).
		Find(&products).Error
	return products, err
}

// ActivateDue is the product flavor of the bulk publish: due products go
// active. Safe to re-run for the same reason the post/page updates are.
func (r *productRepository) ActivateDue(now time.Time) (int64, error) {
	result := r.db.Model(&domain.Product{}).
		Where("status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", domain.StatusScheduled, now).
		Updates(map[string]interface{}{
			"status":       domain.StatusActive,
			"activated_at": now,
			"scheduled_at": nil,
		})
	return result.RowsAffected, result.Error
}

func (r *productRepository) FindUpcoming(organizationID uint64, limit int) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.db.
		Where("organization_id = ? AND status = ?", organizationID, domain.StatusScheduled).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&products).Error
	return products, err
}
