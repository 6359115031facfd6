package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
)

func strPtr(s string) *string { return &s }

func newPostServiceForTest() (PostService, *mockPostRepo, *mockRevisionService) {
	repo := new(mockPostRepo)
	revisions := new(mockRevisionService)
	return NewPostService(repo, revisions), repo, revisions
}

func TestUpdatePost_MeaningfulChangeSnapshotsOldState(t *testing.T) {
	svc, repo, revisions := newPostServiceForTest()

	existing := &domain.Post{
		ID: 10, OrganizationID: 1, Title: "Old Title", Content: "Old body",
		Slug: "old-title", Status: domain.StatusDraft, AuthorID: 7,
	}
	repo.On("FindByID", uint64(10), uint64(1)).Return(existing, nil)

	// The snapshot must carry the PRE-update values
	revisions.On("CreateRevision", domain.ContentTypePost, uint64(10),
		"Old Title", "Old body", mock.Anything, mock.Anything, uint64(1)).
		Return(&domain.Revision{ID: 1, Version: 1}, nil)
	repo.On("Save", mock.AnythingOfType("*domain.Post")).Return(nil)

	updated, err := svc.Update(10, 1, 7, &domain.UpdatePostRequest{Title: strPtr("New Title")})

	assert.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	revisions.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUpdatePost_NoOpSaveProducesNoRevision(t *testing.T) {
	svc, repo, revisions := newPostServiceForTest()

	existing := &domain.Post{ID: 10, OrganizationID: 1, Title: "Title", Content: "Body"}
	repo.On("FindByID", uint64(10), uint64(1)).Return(existing, nil)
	repo.On("Save", mock.AnythingOfType("*domain.Post")).Return(nil)

	_, err := svc.Update(10, 1, 7, &domain.UpdatePostRequest{Title: strPtr("Title")})

	assert.NoError(t, err)
	revisions.AssertNotCalled(t, "CreateRevision",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePost_SlugOnlyChangeProducesNoRevision(t *testing.T) {
	svc, repo, revisions := newPostServiceForTest()

	existing := &domain.Post{ID: 10, OrganizationID: 1, Title: "Title", Content: "Body", Slug: "old-slug"}
	repo.On("FindByID", uint64(10), uint64(1)).Return(existing, nil)
	repo.On("Save", mock.AnythingOfType("*domain.Post")).Return(nil)

	updated, err := svc.Update(10, 1, 7, &domain.UpdatePostRequest{Slug: strPtr("new-slug")})

	assert.NoError(t, err)
	assert.Equal(t, "new-slug", updated.Slug)
	revisions.AssertNotCalled(t, "CreateRevision",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePost_SnapshotFailureDoesNotBlockSave(t *testing.T) {
	svc, repo, revisions := newPostServiceForTest()

	existing := &domain.Post{ID: 10, OrganizationID: 1, Title: "Old", Content: "Body"}
	repo.On("FindByID", uint64(10), uint64(1)).Return(existing, nil)
	revisions.On("CreateRevision", domain.ContentTypePost, uint64(10),
		"Old", "Body", mock.Anything, mock.Anything, uint64(1)).
		Return(nil, assert.AnError)
	repo.On("Save", mock.AnythingOfType("*domain.Post")).Return(nil)

	updated, err := svc.Update(10, 1, 7, &domain.UpdatePostRequest{Title: strPtr("New")})

	assert.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	repo.AssertExpectations(t)
}

func TestUpdatePost_NotFound(t *testing.T) {
	svc, repo, _ := newPostServiceForTest()

	repo.On("FindByID", uint64(99), uint64(1)).Return(nil, common.ErrPostNotFound)

	_, err := svc.Update(99, 1, 7, &domain.UpdatePostRequest{Title: strPtr("X")})

	assert.ErrorIs(t, err, common.ErrPostNotFound)
}

func TestCreatePost_StartsAsDraft(t *testing.T) {
	svc, repo, _ := newPostServiceForTest()

	repo.On("Create", mock.AnythingOfType("*domain.Post")).Return(nil)

	post, err := svc.Create(1, 7, &domain.CreatePostRequest{Title: "Hello", Content: "World"})

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, post.Status)
	assert.Equal(t, uint64(1), post.OrganizationID)
	assert.Equal(t, uint64(7), post.AuthorID)
}

func TestDeletePost_CascadesRevisions(t *testing.T) {
	svc, repo, revisions := newPostServiceForTest()

	repo.On("Delete", uint64(10), uint64(1)).Return(nil)
	revisions.On("DeleteForContent", domain.ContentTypePost, uint64(10), uint64(1)).Return(nil)

	assert.NoError(t, svc.Delete(10, 1))
	revisions.AssertExpectations(t)
}

func TestPublishPost_ClearsSchedule(t *testing.T) {
	svc, repo, _ := newPostServiceForTest()

	at := testNow.Add(time.Hour)
	existing := &domain.Post{ID: 10, OrganizationID: 1, Status: domain.StatusScheduled, ScheduledAt: &at}
	repo.On("FindByID", uint64(10), uint64(1)).Return(existing, nil)
	repo.On("Save", mock.AnythingOfType("*domain.Post")).Return(nil)

	post, err := svc.Publish(10, 1)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPublished, post.Status)
	assert.Nil(t, post.ScheduledAt)
	assert.NotNil(t, post.PublishedAt)
}
