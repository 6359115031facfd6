package service

import (
	"time"

	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"github.com/quillcms/quill-backend/internal/repository"
	"github.com/quillcms/quill-backend/pkg/logger"
)

// PageService business logic for pages
type PageService interface {
	List(organizationID uint64, page, limit int) ([]*domain.Page, *common.Meta, error)
	Get(id, organizationID uint64) (*domain.Page, error)
	Create(organizationID, authorID uint64, req *domain.CreatePageRequest) (*domain.Page, error)
	Update(id, organizationID, userID uint64, req *domain.UpdatePageRequest) (*domain.Page, error)
	Delete(id, organizationID uint64) error
	Publish(id, organizationID uint64) (*domain.Page, error)
	Archive(id, organizationID uint64) (*domain.Page, error)
}

type pageService struct {
	repo      repository.PageRepository
	revisions RevisionService
}

// NewPageService creates a new PageService
func NewPageService(repo repository.PageRepository, revisions RevisionService) PageService {
	return &pageService{repo: repo, revisions: revisions}
}

func (s *pageService) List(organizationID uint64, page, limit int) ([]*domain.Page, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	pages, total, err := s.repo.List(organizationID, page, limit)
	if err != nil {
		return nil, nil, err
	}

	meta := &common.Meta{Page: page, Limit: limit, Total: total}
	return pages, meta, nil
}

func (s *pageService) Get(id, organizationID uint64) (*domain.Page, error) {
	return s.repo.FindByID(id, organizationID)
}

func (s *pageService) Create(organizationID, authorID uint64, req *domain.CreatePageRequest) (*domain.Page, error) {
	page := &domain.Page{
		OrganizationID: organizationID,
		Title:          req.Title,
		Slug:           req.Slug,
		Content:        req.Content,
		Template:       req.Template,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		Status:         domain.StatusDraft,
		AuthorID:       authorID,
	}

	if err := s.repo.Create(page); err != nil {
		return nil, err
	}
	return page, nil
}

// Update snapshots the pre-update state when a meaningful field changed,
// then persists. Snapshot failure is logged, never blocks the save.
func (s *pageService) Update(id, organizationID, userID uint64, req *domain.UpdatePageRequest) (*domain.Page, error) {
	page, err := s.repo.FindByID(id, organizationID)
	if err != nil {
		return nil, err
	}

	before := *page
	applyPagePatch(page, req)

	if pageMeaningfullyChanged(&before, page) {
		_, err := s.revisions.CreateRevision(
			domain.ContentTypePage, before.ID, before.Title, before.Content,
			before.SnapshotMetadata(), &userID, organizationID,
		)
		if err != nil {
			logger.Get().Error().Err(err).Uint64("page_id", id).Msg("failed to snapshot page revision")
		}
	}

	if err := s.repo.Save(page); err != nil {
		return nil, err
	}
	return page, nil
}

// Delete hard-deletes the page and cascades its revision history
func (s *pageService) Delete(id, organizationID uint64) error {
	if err := s.repo.Delete(id, organizationID); err != nil {
		return err
	}
	if err := s.revisions.DeleteForContent(domain.ContentTypePage, id, organizationID); err != nil {
		logger.Get().Warn().Err(err).Uint64("page_id", id).Msg("failed to cascade revision cleanup")
	}
	return nil
}

func (s *pageService) Publish(id, organizationID uint64) (*domain.Page, error) {
	page, err := s.repo.FindByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	page.Status = domain.StatusPublished
	page.PublishedAt = &now
	page.ScheduledAt = nil
	if err := s.repo.Save(page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *pageService) Archive(id, organizationID uint64) (*domain.Page, error) {
	page, err := s.repo.FindByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	page.Status = domain.StatusArchived
	page.ScheduledAt = nil
	if err := s.repo.Save(page); err != nil {
		return nil, err
	}
	return page, nil
}

func applyPagePatch(page *domain.Page, req *domain.UpdatePageRequest) {
	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Slug != nil {
		page.Slug = *req.Slug
	}
	if req.Content != nil {
		page.Content = *req.Content
	}
	if req.Template != nil {
		page.Template = *req.Template
	}
	if req.SEOTitle != nil {
		page.SEOTitle = *req.SEOTitle
	}
	if req.SEODescription != nil {
		page.SEODescription = *req.SEODescription
	}
}

// pageMeaningfullyChanged: title, body, template, or SEO metadata differing
func pageMeaningfullyChanged(before, after *domain.Page) bool {
	return before.Title != after.Title ||
		before.Content != after.Content ||
		before.Template != after.Template ||
		before.SEOTitle != after.SEOTitle ||
		before.SEODescription != after.SEODescription
}
