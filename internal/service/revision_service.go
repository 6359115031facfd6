package service

import (
	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"github.com/quillcms/quill-backend/internal/repository"
	"github.com/quillcms/quill-backend/pkg/logger"
)

// RevisionService versioned content snapshots: create with retention,
// list/get, coarse diff, restore
type RevisionService interface {
	CreateRevision(contentType domain.ContentType, contentID uint64, title, content string,
		metadata domain.JSONMap, authorID *uint64, organizationID uint64) (*domain.Revision, error)
	ListRevisions(contentType domain.ContentType, contentID, organizationID uint64, limit int) ([]*domain.Revision, error)
	GetRevision(id, organizationID uint64) (*domain.Revision, error)
	GetRevisionByVersion(contentType domain.ContentType, contentID uint64, version uint, organizationID uint64) (*domain.Revision, error)
	CompareRevisions(older, newer *domain.Revision) []domain.FieldDiff
	RestoreRevision(revisionID, organizationID, userID uint64) (interface{}, error)
	DeleteForContent(contentType domain.ContentType, contentID, organizationID uint64) error
	PurgeOrganization(organizationID uint64) error
}

type revisionService struct {
	repo     repository.RevisionRepository
	posts    repository.PostRepository
	pages    repository.PageRepository
	products repository.ProductRepository
}

// NewRevisionService creates a new RevisionService. The content
// repositories are needed only by Restore, which dispatches on the
// revision's content type.
func NewRevisionService(
	repo repository.RevisionRepository,
	posts repository.PostRepository,
	pages repository.PageRepository,
	products repository.ProductRepository,
) RevisionService {
	return &revisionService{repo: repo, posts: posts, pages: pages, products: products}
}

// CreateRevision snapshots the pre-update state of a content entity. The
// caller has already decided the edit was meaningful; this method has no
// opinion on that. Retention pruning runs after the insert commits and is
// never allowed to fail the create.
func (s *revisionService) CreateRevision(contentType domain.ContentType, contentID uint64, title, content string,
	metadata domain.JSONMap, authorID *uint64, organizationID uint64) (*domain.Revision, error) {

	if !contentType.Valid() {
		return nil, common.NewUnknownContentType(string(contentType))
	}
	if metadata == nil {
		metadata = domain.JSONMap{}
	}

	revision := &domain.Revision{
		ContentType:    contentType,
		ContentID:      contentID,
		Title:          title,
		Content:        content,
		Metadata:       metadata,
		AuthorID:       authorID,
		OrganizationID: organizationID,
	}

	if err := s.repo.Create(revision); err != nil {
		return nil, err
	}

	if pruned, err := s.repo.PruneExcess(contentType, contentID, organizationID, domain.MaxRevisionsPerContent); err != nil {
		logger.Get().Warn().Err(err).
			Str("content_type", string(contentType)).
			Uint64("content_id", contentID).
			Msg("revision pruning failed")
	} else if pruned > 0 {
		logger.Get().Debug().Int64("pruned", pruned).
			Str("content_type", string(contentType)).
			Uint64("content_id", contentID).
			Msg("pruned old revisions")
	}

	return revision, nil
}

func (s *revisionService) ListRevisions(contentType domain.ContentType, contentID, organizationID uint64, limit int) ([]*domain.Revision, error) {
	if !contentType.Valid() {
		return nil, common.NewUnknownContentType(string(contentType))
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.FindByContent(contentType, contentID, organizationID, limit)
}

func (s *revisionService) GetRevision(id, organizationID uint64) (*domain.Revision, error) {
	return s.repo.FindByID(id, organizationID)
}

func (s *revisionService) GetRevisionByVersion(contentType domain.ContentType, contentID uint64, version uint, organizationID uint64) (*domain.Revision, error) {
	if !contentType.Valid() {
		return nil, common.NewUnknownContentType(string(contentType))
	}
	return s.repo.FindByVersion(contentType, contentID, version, organizationID)
}

// CompareRevisions diffs exactly three fields: title, content, and
// metadata as one opaque serialized blob. A change anywhere inside
// metadata surfaces as a single "metadata" entry, not per-key diffs.
func (s *revisionService) CompareRevisions(older, newer *domain.Revision) []domain.FieldDiff {
	diffs := []domain.FieldDiff{}

	if older.Title != newer.Title {
		diffs = append(diffs, domain.FieldDiff{Field: "title", OldValue: older.Title, NewValue: newer.Title})
	}
	if older.Content != newer.Content {
		diffs = append(diffs, domain.FieldDiff{Field: "content", OldValue: older.Content, NewValue: newer.Content})
	}
	oldMeta, newMeta := older.Metadata.Serialized(), newer.Metadata.Serialized()
	if oldMeta != newMeta {
		diffs = append(diffs, domain.FieldDiff{Field: "metadata", OldValue: oldMeta, NewValue: newMeta})
	}

	return diffs
}

// RestoreRevision overwrites the owning entity with the revision's
// snapshot, then records a new revision whose payload equals the restored
// data, tagged metadata.restored_from = <source version>. The log gains a
// "we restored to version N" entry; it does not preserve what the restore
// overwrote. Audit trails depend on exactly this shape.
func (s *revisionService) RestoreRevision(revisionID, organizationID, userID uint64) (interface{}, error) {
	revision, err := s.repo.FindByID(revisionID, organizationID)
	if err != nil {
		return nil, err
	}

	switch revision.ContentType {
	case domain.ContentTypePost:
		return s.restorePost(revision, organizationID, userID)
	case domain.ContentTypePage:
		return s.restorePage(revision, organizationID, userID)
	case domain.ContentTypeProduct:
		return s.restoreProduct(revision, organizationID, userID)
	default:
		return nil, common.NewUnknownContentType(string(revision.ContentType))
	}
}

func (s *revisionService) restorePost(revision *domain.Revision, organizationID, userID uint64) (interface{}, error) {
	post, err := s.posts.FindByID(revision.ContentID, organizationID)
	if err != nil {
		return nil, err
	}

	post.Title = revision.Title
	post.Content = revision.Content
	if excerpt := revision.Metadata.String("excerpt"); excerpt != "" {
		post.Excerpt = excerpt
	}
	if err := s.posts.Save(post); err != nil {
		return nil, err
	}

	if err := s.recordRestorePoint(revision, post.Title, post.Content, post.SnapshotMetadata(), userID); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *revisionService) restorePage(revision *domain.Revision, organizationID, userID uint64) (interface{}, error) {
	page, err := s.pages.FindByID(revision.ContentID, organizationID)
	if err != nil {
		return nil, err
	}

	page.Title = revision.Title
	page.Content = revision.Content
	if err := s.pages.Save(page); err != nil {
		return nil, err
	}

	if err := s.recordRestorePoint(revision, page.Title, page.Content, page.SnapshotMetadata(), userID); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *revisionService) restoreProduct(revision *domain.Revision, organizationID, userID uint64) (interface{}, error) {
	product, err := s.products.FindByID(revision.ContentID, organizationID)
	if err != nil {
		return nil, err
	}

	product.Name = revision.Title
	product.Description = revision.Content
	if err := s.products.Save(product); err != nil {
		return nil, err
	}

	if err := s.recordRestorePoint(revision, product.Name, product.Description, product.SnapshotMetadata(), userID); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *revisionService) recordRestorePoint(source *domain.Revision, title, content string, metadata domain.JSONMap, userID uint64) error {
	metadata[domain.MetaRestoredFrom] = source.Version
	_, err := s.CreateRevision(source.ContentType, source.ContentID, title, content,
		metadata, &userID, source.OrganizationID)
	return err
}

func (s *revisionService) DeleteForContent(contentType domain.ContentType, contentID, organizationID uint64) error {
	return s.repo.DeleteByContent(contentType, contentID, organizationID)
}

func (s *revisionService) PurgeOrganization(organizationID uint64) error {
	return s.repo.DeleteByOrganization(organizationID)
}
