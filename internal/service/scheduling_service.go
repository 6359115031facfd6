package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"github.com/quillcms/quill-backend/internal/repository"
	"github.com/quillcms/quill-backend/pkg/cache"
	"github.com/quillcms/quill-backend/pkg/logger"
)

// upcomingOverfetch fetches this many times the requested limit per
// content type before the cross-type merge, so the merged top-N is not
// under-represented when one type dominates.
const upcomingOverfetch = 3

// SchedulingService deferred publishing: schedule/unschedule transitions,
// the due scan, and the idempotent batch publisher
type SchedulingService interface {
	Schedule(contentType domain.ContentType, contentID uint64, scheduledAt time.Time, organizationID uint64) (interface{}, error)
	Unschedule(contentType domain.ContentType, contentID, organizationID uint64) (interface{}, error)
	DueContent() (*domain.DueContent, error)
	PublishDue() *domain.PublishResult
	Upcoming(ctx context.Context, organizationID uint64, limit int) ([]domain.UpcomingItem, error)
}

type schedulingService struct {
	posts    repository.PostRepository
	pages    repository.PageRepository
	products repository.ProductRepository
	cache    cache.Service
	now      func() time.Time
}

// NewSchedulingService creates a new SchedulingService. cacheService may
// be nil (Redis unavailable); the upcoming projection then skips caching.
func NewSchedulingService(
	posts repository.PostRepository,
	pages repository.PageRepository,
	products repository.ProductRepository,
	cacheService cache.Service,
) SchedulingService {
	return &schedulingService{
		posts:    posts,
		pages:    pages,
		products: products,
		cache:    cacheService,
		now:      time.Now,
	}
}

// Schedule validates the timestamp before any write: a past or present
// scheduledAt is rejected with ErrInvalidSchedule and the content row is
// untouched.
func (s *schedulingService) Schedule(contentType domain.ContentType, contentID uint64, scheduledAt time.Time, organizationID uint64) (interface{}, error) {
	if !contentType.Valid() {
		return nil, common.NewUnknownContentType(string(contentType))
	}
	if !scheduledAt.After(s.now()) {
		return nil, common.ErrInvalidSchedule
	}

	var entity interface{}
	var err error
	switch contentType {
	case domain.ContentTypePost:
		entity, err = s.posts.Schedule(contentID, organizationID, scheduledAt)
	case domain.ContentTypePage:
		entity, err = s.pages.Schedule(contentID, organizationID, scheduledAt)
	case domain.ContentTypeProduct:
		entity, err = s.products.Schedule(contentID, organizationID, scheduledAt)
	}
	if err != nil {
		return nil, err
	}

	s.invalidateUpcoming(organizationID)
	return entity, nil
}

// Unschedule reverts to draft and clears scheduled_at. Setting draft on an
// already-draft item is a harmless no-op.
func (s *schedulingService) Unschedule(contentType domain.ContentType, contentID, organizationID uint64) (interface{}, error) {
	if !contentType.Valid() {
		return nil, common.NewUnknownContentType(string(contentType))
	}

	var entity interface{}
	var err error
	switch contentType {
	case domain.ContentTypePost:
		entity, err = s.posts.Unschedule(contentID, organizationID)
	case domain.ContentTypePage:
		entity, err = s.pages.Unschedule(contentID, organizationID)
	case domain.ContentTypeProduct:
		entity, err = s.products.Unschedule(contentID, organizationID)
	}
	if err != nil {
		return nil, err
	}

	s.invalidateUpcoming(organizationID)
	return entity, nil
}

// DueContent is the cross-tenant scan used internally by the batch
// publisher: everything scheduled with scheduled_at <= now.
func (s *schedulingService) DueContent() (*domain.DueContent, error) {
	now := s.now()

	posts, err := s.posts.FindDue(now)
	if err != nil {
		return nil, err
	}
	pages, err := s.pages.FindDue(now)
	if err != nil {
		return nil, err
	}
	products, err := s.products.FindDue(now)
	if err != nil {
		return nil, err
	}

	return &domain.DueContent{Posts: posts, Pages: pages, Products: products}, nil
}

// PublishDue promotes all due content to its terminal state, one bulk
// update per content type. A failing type is recorded in Errors and the
// remaining types are still attempted. Re-running is a no-op because
// published rows no longer match the bulk update's WHERE clause — that
// idempotence is the only duplicate-trigger protection; there is no
// distributed lock.
func (s *schedulingService) PublishDue() *domain.PublishResult {
	now := s.now()
	result := &domain.PublishResult{Errors: []string{}}

	if n, err := s.posts.PublishDue(now); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("posts: %v", err))
	} else {
		result.Posts = n
	}

	if n, err := s.pages.PublishDue(now); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("pages: %v", err))
	} else {
		result.Pages = n
	}

	if n, err := s.products.ActivateDue(now); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("products: %v", err))
	} else {
		result.Products = n
	}

	if result.Posts+result.Pages+result.Products > 0 || len(result.Errors) > 0 {
		logger.Get().Info().
			Int64("posts", result.Posts).
			Int64("pages", result.Pages).
			Int64("products", result.Products).
			Strs("errors", result.Errors).
			Msg("batch publish completed")
	}

	return result
}

// Upcoming is a read-only dashboard projection: scheduled items merged
// across the three content types, soonest first. Each type is over-fetched
// before the merge so slicing to limit cannot starve a type.
func (s *schedulingService) Upcoming(ctx context.Context, organizationID uint64, limit int) ([]domain.UpcomingItem, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}

	if s.cache != nil {
		var cached []domain.UpcomingItem
		if err := s.cache.GetUpcoming(ctx, organizationID, limit, &cached); err == nil {
			return cached, nil
		}
	}

	perType := limit * upcomingOverfetch

	posts, err := s.posts.FindUpcoming(organizationID, perType)
	if err != nil {
		return nil, err
	}
	pages, err := s.pages.FindUpcoming(organizationID, perType)
	if err != nil {
		return nil, err
	}
	products, err := s.products.FindUpcoming(organizationID, perType)
	if err != nil {
		return nil, err
	}

	items := make([]domain.UpcomingItem, 0, len(posts)+len(pages)+len(products))
	for _, p := range posts {
		if p.ScheduledAt == nil {
			continue
		}
		items = append(items, domain.UpcomingItem{
			ID: p.ID, Title: p.Title, Type: domain.ContentTypePost,
			Status: p.Status, ScheduledAt: *p.ScheduledAt,
		})
	}
	for _, p := range pages {
		if p.ScheduledAt == nil {
			continue
		}
		items = append(items, domain.UpcomingItem{
			ID: p.ID, Title: p.Title, Type: domain.ContentTypePage,
			Status: p.Status, ScheduledAt: *p.ScheduledAt,
		})
	}
	for _, p := range products {
		if p.ScheduledAt == nil {
			continue
		}
		items = append(items, domain.UpcomingItem{
			ID: p.ID, Title: p.Name, Type: domain.ContentTypeProduct,
			Status: p.Status, ScheduledAt: *p.ScheduledAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].ScheduledAt.Before(items[j].ScheduledAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}

	if s.cache != nil {
		if err := s.cache.SetUpcoming(ctx, organizationID, limit, items); err != nil {
			logger.Get().Warn().Err(err).Msg("failed to cache upcoming schedule")
		}
	}

	return items, nil
}

func (s *schedulingService) invalidateUpcoming(organizationID uint64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateUpcoming(context.Background(), organizationID); err != nil {
		logger.Get().Warn().Err(err).Uint64("organization_id", organizationID).
			Msg("failed to invalidate upcoming cache")
	}
}
