package service

import (
	"time"

	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"github.com/quillcms/quill-backend/internal/repository"
	"github.com/quillcms/quill-backend/pkg/logger"
)

// PostService business logic for posts
type PostService interface {
	List(organizationID uint64, page, limit int) ([]*domain.Post, *common.Meta, error)
	Get(id, organizationID uint64) (*domain.Post, error)
	Create(organizationID, authorID uint64, req *domain.CreatePostRequest) (*domain.Post, error)
	Update(id, organizationID, userID uint64, req *domain.UpdatePostRequest) (*domain.Post, error)
	Delete(id, organizationID uint64) error
	Publish(id, organizationID uint64) (*domain.Post, error)
	Archive(id, organizationID uint64) (*domain.Post, error)
}

type postService struct {
	repo      repository.PostRepository
	revisions RevisionService
}

// NewPostService creates a new PostService
func NewPostService(repo repository.PostRepository, revisions RevisionService) PostService {
	return &postService{repo: repo, revisions: revisions}
}

func (s *postService) List(organizationID uint64, page, limit int) ([]*domain.Post, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	posts, total, err := s.repo.List(organizationID, page, limit)
	if err != nil {
		return nil, nil, err
	}

	meta := &common.Meta{Page: page, Limit: limit, Total: total}
	return posts, meta, nil
}

func (s *postService) Get(id, organizationID uint64) (*domain.Post, error) {
	return s.repo.FindByID(id, organizationID)
}

func (s *postService) Create(organizationID, authorID uint64, req *domain.CreatePostRequest) (*domain.Post, error) {
	post := &domain.Post{
		OrganizationID: organizationID,
		Title:          req.Title,
		Slug:           req.Slug,
		Content:        req.Content,
		Excerpt:        req.Excerpt,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		CategoryName:   req.CategoryName,
		TagNames:       req.TagNames,
		Status:         domain.StatusDraft,
		AuthorID:       authorID,
	}

	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update loads the pre-update entity, applies the patch, and snapshots the
// OLD state into the revision store when a meaningful field changed. No-op
// saves produce no revision. Snapshot failure is logged, never blocks the
// save.
func (s *postService) Update(id, organizationID, userID uint64, req *domain.UpdatePostRequest) (*domain.Post, error) {
	post, err := s.repo.FindByID(id, organizationID)
	if err != nil {
		return nil, err
	}

	before := *post
	applyPostPatch(post, req)

	if postMeaningfullyChanged(&before, post) {
		_, err := s.revisions.CreateRevision(
			domain.ContentTypePost, before.ID, before.Title, before.Content,
			before.SnapshotMetadata(), &userID, organizationID,
		)
		if err != nil {
			logger.Get().Error().Err(err).Uint64("post_id", id).Msg("failed to snapshot post revision")
		}
	}

	if err := s.repo.Save(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete hard-deletes the post and cascades its revision history
func (s *postService) Delete(id, organizationID uint64) error {
	if err := s.repo.Delete(id, organizationID); err != nil {
		return err
	}
	if err := s.revisions.DeleteForContent(domain.ContentTypePost, id, organizationID); err != nil {
		logger.Get().Warn().Err(err).Uint64("post_id", id).Msg("failed to cascade revision cleanup")
	}
	return nil
}

// Publish is the immediate transition; scheduled publishing lives in the
// scheduling service.
func (s *postService) Publish(id, organizationID uint64) (*domain.Post, error) {
	post, err := s.repo.FindByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	post.Status = domain.StatusPublished
	post.PublishedAt = &now
	post.ScheduledAt = nil
	if err := s.repo.Save(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Archive(id, organizationID uint64) (*domain.Post, error) {
	post, err := s.repo.FindByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	post.Status = domain.StatusArchived
	post.ScheduledAt = nil
	if err := s.repo.Save(post); err != nil {
		return nil, err
	}
	return post, nil
}

func applyPostPatch(post *domain.Post, req *domain.UpdatePostRequest) {
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.SEOTitle != nil {
		post.SEOTitle = *req.SEOTitle
	}
	if req.SEODescription != nil {
		post.SEODescription = *req.SEODescription
	}
	if req.CategoryName != nil {
		post.CategoryName = *req.CategoryName
	}
	if req.TagNames != nil {
		post.TagNames = *req.TagNames
	}
}

// postMeaningfullyChanged is the revision-worthiness policy: title, body,
// excerpt, or SEO metadata differing. Slug/category/tag edits alone do not
// snapshot.
func postMeaningfullyChanged(before, after *domain.Post) bool {
	return before.Title != after.Title ||
		before.Content != after.Content ||
		before.Excerpt != after.Excerpt ||
		before.SEOTitle != after.SEOTitle ||
		before.SEODescription != after.SEODescription
}
