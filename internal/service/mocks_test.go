package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/quillcms/quill-backend/internal/domain"
)

// --- Mock RevisionRepository ---

type mockRevisionRepo struct {
	mock.Mock
}

func (m *mockRevisionRepo) Create(revision *domain.Revision) error {
	return m.Called(revision).Error(0)
}

func (m *mockRevisionRepo) FindByContent(contentType domain.ContentType, contentID, organizationID uint64, limit int) ([]*domain.Revision, error) {
	args := m.Called(contentType, contentID, organizationID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Revision), args.Error(1)
}

func (m *mockRevisionRepo) FindByID(id, organizationID uint64) (*domain.Revision, error) {
	args := m.Called(id, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Revision), args.Error(1)
}

func (m *mockRevisionRepo) FindByVersion(contentType domain.ContentType, contentID uint64, version uint, organizationID uint64) (*domain.Revision, error) {
	args := m.Called(contentType, contentID, version, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Revision), args.Error(1)
}

func (m *mockRevisionRepo) CountByContent(contentType domain.ContentType, contentID, organizationID uint64) (int64, error) {
	args := m.Called(contentType, contentID, organizationID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRevisionRepo) PruneExcess(contentType domain.ContentType, contentID, organizationID uint64, keep int) (int64, error) {
	args := m.Called(contentType, contentID, organizationID, keep)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRevisionRepo) DeleteByContent(contentType domain.ContentType, contentID, organizationID uint64) error {
	return m.Called(contentType, contentID, organizationID).Error(0)
}

func (m *mockRevisionRepo) DeleteByOrganization(organizationID uint64) error {
	return m.Called(organizationID).Error(0)
}

// --- Mock PostRepository ---

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) FindByID(id, organizationID uint64) (*domain.Post, error) {
	args := m.Called(id, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostRepo) List(organizationID uint64, page, limit int) ([]*domain.Post, int64, error) {
	args := m.Called(organizationID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Post), args.Get(1).(int64), args.Error(2)
}

func (m *mockPostRepo) Create(post *domain.Post) error {
	return m.Called(post).Error(0)
}

func (m *mockPostRepo) Save(post *domain.Post) error {
	return m.Called(post).Error(0)
}

func (m *mockPostRepo) Delete(id, organizationID uint64) error {
	return m.Called(id, organizationID).Error(0)
}

func (m *mockPostRepo) Schedule(id, organizationID uint64, at time.Time) (*domain.Post, error) {
	args := m.Called(id, organizationID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostRepo) Unschedule(id, organizationID uint64) (*domain.Post, error) {
	args := m.Called(id, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostRepo) FindDue(now time.Time) ([]*domain.Post, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *mockPostRepo) PublishDue(now time.Time) (int64, error) {
	args := m.Called(now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPostRepo) FindUpcoming(organizationID uint64, limit int) ([]*domain.Post, error) {
	args := m.Called(organizationID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

// --- Mock PageRepository ---

type mockPageRepo struct {
	mock.Mock
}

func (m *mockPageRepo) FindByID(id, organizationID uint64) (*domain.Page, error) {
	args := m.Called(id, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page), args.Error(1)
}

func (m *mockPageRepo) List(organizationID uint64, page, limit int) ([]*domain.Page, int64, error) {
	args := m.Called(organizationID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Page), args.Get(1).(int64), args.Error(2)
}

func (m *mockPageRepo) Create(page *domain.Page) error {
	return m.Called(page).Error(0)
}

func (m *mockPageRepo) Save(page *domain.Page) error {
	return m.Called(page).Error(0)
}

func (m *mockPageRepo) Delete(id, organizationID uint64) error {
	return m.Called(id, organizationID).Error(0)
}

func (m *mockPageRepo) Schedule(id, organizationID uint64, at time.Time) (*domain.Page, error) {
	args := m.Called(id, organizationID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page), args.Error(1)
}

func (m *mockPageRepo) Unschedule(id, organizationID uint64) (*domain.Page, error) {
	args := m.Called(id, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page), args.Error(1)
}

func (m *mockPageRepo) FindDue(now time.Time) ([]*domain.Page, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Page), args.Error(1)
}

func (m *mockPageRepo) PublishDue(now time.Time) (int64, error) {
	args := m.Called(now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPageRepo) FindUpcoming(organizationID uint64, limit int) ([]*domain.Page, error) {
	args := m.Called(organizationID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Page), args.Error(1)
}

// --- Mock ProductRepository ---

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) FindByID(id, organizationID uint64) (*domain.Product, error) {
	args := m.Called(id, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepo) List(organizationID uint64, page, limit int) ([]*domain.Product, int64, error) {
	args := m.Called(organizationID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Product), args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) Create(product *domain.Product) error {
	return m.Called(product).Error(0)
}

func (m *mockProductRepo) Save(product *domain.Product) error {
	return m.Called(product).Error(0)
}

func (m *mockProductRepo) Delete(id, organizationID uint64) error {
	return m.Called(id, organizationID).Error(0)
}

func (m *mockProductRepo) Schedule(id, organizationID uint64, at time.Time) (*domain.Product, error) {
	args := m.Called(id, organizationID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepo) Unschedule(id, organizationID uint64) (*domain.Product, error) {
	args := m.Called(id, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepo) FindDue(now time.Time) ([]*domain.Product, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *mockProductRepo) ActivateDue(now time.Time) (int64, error) {
	args := m.Called(now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) FindUpcoming(organizationID uint64, limit int) ([]*domain.Product, error) {
	args := m.Called(organizationID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

// --- Mock RevisionService ---

type mockRevisionService struct {
	mock.Mock
}

func (m *mockRevisionService) CreateRevision(contentType domain.ContentType, contentID uint64, title, content string,
	metadata domain.JSONMap, authorID *uint64, organizationID uint64) (*domain.Revision, error) {
	args := m.Called(contentType, contentID, title, content, metadata, authorID, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Revision), args.Error(1)
}

func (m *mockRevisionService) ListRevisions(contentType domain.ContentType, contentID, organizationID uint64, limit int) ([]*domain.Revision, error) {
	args := m.Called(contentType, contentID, organizationID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Revision), args.Error(1)
}

func (m *mockRevisionService) GetRevision(id, organizationID uint64) (*domain.Revision, error) {
	args := m.Called(id, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Revision), args.Error(1)
}

func (m *mockRevisionService) GetRevisionByVersion(contentType domain.ContentType, contentID uint64, version uint, organizationID uint64) (*domain.Revision, error) {
	args := m.Called(contentType, contentID, version, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Revision), args.Error(1)
}

func (m *mockRevisionService) CompareRevisions(older, newer *domain.Revision) []domain.FieldDiff {
	args := m.Called(older, newer)
	return args.Get(0).([]domain.FieldDiff)
}

func (m *mockRevisionService) RestoreRevision(revisionID, organizationID, userID uint64) (interface{}, error) {
	args := m.Called(revisionID, organizationID, userID)
	return args.Get(0), args.Error(1)
}

func (m *mockRevisionService) DeleteForContent(contentType domain.ContentType, contentID, organizationID uint64) error {
	return m.Called(contentType, contentID, organizationID).Error(0)
}

func (m *mockRevisionService) PurgeOrganization(organizationID uint64) error {
	return m.Called(organizationID).Error(0)
}

// --- Mock cache.Service ---

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) error {
	return m.Called(ctx, key, dest).Error(0)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, keys ...string) error {
	callArgs := make([]interface{}, 0, len(keys)+1)
	callArgs = append(callArgs, ctx)
	for _, k := range keys {
		callArgs = append(callArgs, k)
	}
	return m.Called(callArgs...).Error(0)
}

func (m *mockCache) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) GetUpcoming(ctx context.Context, organizationID uint64, limit int, dest interface{}) error {
	return m.Called(ctx, organizationID, limit, dest).Error(0)
}

func (m *mockCache) SetUpcoming(ctx context.Context, organizationID uint64, limit int, items interface{}) error {
	return m.Called(ctx, organizationID, limit, items).Error(0)
}

func (m *mockCache) InvalidateUpcoming(ctx context.Context, organizationID uint64) error {
	return m.Called(ctx, organizationID).Error(0)
}
