package repository

import (
	"errors"
	"time"

	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"gorm.io/gorm"
)

// PostRepository post data access, organization-scoped except for the
// cross-tenant due scan used by the batch publisher
type PostRepository interface {
	FindByID(id, organizationID uint64) (*domain.Post, error)
	List(organizationID uint64, page, limit int) ([]*domain.Post, int64, error)
	Create(post *domain.Post) error
	Save(post *domain.Post) error
	Delete(id, organizationID uint64) error

	Schedule(id, organizationID uint64, at time.Time) (*domain.Post, error)
	Unschedule(id, organizationID uint64) (*domain.Post, error)
	FindDue(now time.Time) ([]*domain.Post, error)
	PublishDue(now time.Time) (int64, error)
	FindUpcoming(organizationID uint64, limit int) ([]*domain.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) FindByID(id, organizationID uint64) (*domain.Post, error) {
	var post domain.Post
	err := r.db.Where("id = ? AND organization_id = ?", id, organizationID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(organizationID uint64, page, limit int) ([]*domain.Post, int64, error) {
	var posts []*domain.Post
	var total int64

	query := r.db.Model(&domain.Post{}).Where("organization_id = ?", organizationID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *postRepository) Create(post *domain.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) Save(post *domain.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) Delete(id, organizationID uint64) error {
	result := r.db.Where("id = ? AND organization_id = ?", id, organizationID).Delete(&domain.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) Schedule(id, organizationID uint64, at time.Time) (*domain.Post, error) {
	post, err := r.FindByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	post.Status = domain.StatusScheduled
	post.ScheduledAt = &at
	if err := r.db.Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (r *postRepository) Unschedule(id, organizationID uint64) (*domain.Post, error) {
	post, err := r.FindByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	post.Status = domain.StatusDraft
	post.ScheduledAt = nil
	if err := r.db.Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (r *postRepository) FindDue(now time.Time) ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.db.
		Where("status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", domain.StatusScheduled, now).
		Find(&posts).Error
	return posts, err
}

// PublishDue flips every due row in one set-based update. The WHERE clause
// only matches rows still in scheduled state, which is what makes repeated
// trigger invocations a safe no-op.
func (r *postRepository) PublishDue(now time.Time) (int64, error) {
	result := r.db.Model(&domain.Post{}).
		Where("status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", domain.StatusScheduled, now).
		Updates(map[string]interface{}{
			"status":       domain.StatusPublished,
			"published_at": now,
			"scheduled_at": nil,
		})
	return result.RowsAffected, result.Error
}

func (r *postRepository) FindUpcoming(organizationID uint64, limit int) ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.db.
		Where("organization_id = ? AND status = ?", organizationID, domain.StatusScheduled).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}
