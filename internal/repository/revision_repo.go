package repository

import (
	"errors"

	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RevisionRepository content revision data access. Every query is scoped by
// organization: a content_id is only unique within its tenant.
type RevisionRepository interface {
	Create(revision *domain.Revision) error
	FindByContent(contentType domain.ContentType, contentID, organizationID uint64, limit int) ([]*domain.Revision, error)
	FindByID(id, organizationID uint64) (*domain.Revision, error)
	FindByVersion(contentType domain.ContentType, contentID uint64, version uint, organizationID uint64) (*domain.Revision, error)
	CountByContent(contentType domain.ContentType, contentID, organizationID uint64) (int64, error)
	PruneExcess(contentType domain.ContentType, contentID, organizationID uint64, keep int) (int64, error)
	DeleteByContent(contentType domain.ContentType, contentID, organizationID uint64) error
	DeleteByOrganization(organizationID uint64) error
}

type revisionRepository struct {
	db *gorm.DB
}

// NewRevisionRepository creates a new RevisionRepository
func NewRevisionRepository(db *gorm.DB) RevisionRepository {
	return &revisionRepository{db: db}
}

// Create assigns version = max+1 and inserts in one transaction, holding a
// row lock on the key's existing revisions so two concurrent edits cannot
// compute the same next version. The unique index on
// (content_type, content_id, organization_id, version) backstops the lock;
// a loser retries once with a fresh number.
func (r *revisionRepository) Create(revision *domain.Revision) error {
	err := r.createOnce(revision)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = r.createOnce(revision)
	}
	return err
}

func (r *revisionRepository) createOnce(revision *domain.Revision) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var maxVersion *uint
		err := tx.Model(&domain.Revision{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("content_type = ? AND content_id = ? AND organization_id = ?",
				revision.ContentType, revision.ContentID, revision.OrganizationID).
			Select("MAX(version)").
			Scan(&maxVersion).Error
		if err != nil {
			return err
		}

		revision.Version = 1
		if maxVersion != nil {
			revision.Version = *maxVersion + 1
		}

		return tx.Create(revision).Error
	})
}

func (r *revisionRepository) FindByContent(contentType domain.ContentType, contentID, organizationID uint64, limit int) ([]*domain.Revision, error) {
	var revisions []*domain.Revision
	err := r.db.
		Where("content_type = ? AND content_id = ? AND organization_id = ?", contentType, contentID, organizationID).
		Order("version DESC").
		Limit(limit).
		Find(&revisions).Error
	return revisions, err
}

func (r *revisionRepository) FindByID(id, organizationID uint64) (*domain.Revision, error) {
	var revision domain.Revision
	err := r.db.
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&revision).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrRevisionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &revision, nil
}

func (r *revisionRepository) FindByVersion(contentType domain.ContentType, contentID uint64, version uint, organizationID uint64) (*domain.Revision, error) {
	var revision domain.Revision
	err := r.db.
		Where("content_type = ? AND content_id = ? AND version = ? AND organization_id = ?",
			contentType, contentID, version, organizationID).
		First(&revision).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrRevisionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &revision, nil
}

func (r *revisionRepository) CountByContent(contentType domain.ContentType, contentID, organizationID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Revision{}).
		Where("content_type = ? AND content_id = ? AND organization_id = ?", contentType, contentID, organizationID).
		Count(&count).Error
	return count, err
}

// PruneExcess deletes the lowest-versioned rows until only keep remain.
// Set-based: one query finds the keep-th newest version, one delete drops
// everything older.
func (r *revisionRepository) PruneExcess(contentType domain.ContentType, contentID, organizationID uint64, keep int) (int64, error) {
	var versions []uint
	err := r.db.Model(&domain.Revision{}).
		Where("content_type = ? AND content_id = ? AND organization_id = ?", contentType, contentID, organizationID).
		Order("version DESC").
		Offset(keep - 1).
		Limit(1).
		Pluck("version", &versions).Error
	if err != nil {
		return 0, err
	}
	if len(versions) == 0 {
		// fewer than keep rows exist
		return 0, nil
	}

	result := r.db.
		Where("content_type = ? AND content_id = ? AND organization_id = ? AND version < ?",
			contentType, contentID, organizationID, versions[0]).
		Delete(&domain.Revision{})
	return result.RowsAffected, result.Error
}

func (r *revisionRepository) DeleteByContent(contentType domain.ContentType, contentID, organizationID uint64) error {
	return r.db.
		Where("content_type = ? AND content_id = ? AND organization_id = ?", contentType, contentID, organizationID).
		Delete(&domain.Revision{}).Error
}

func (r *revisionRepository) DeleteByOrganization(organizationID uint64) error {
	return r.db.
		Where("organization_id = ?", organizationID).
		Delete(&domain.Revision{}).Error
}
