package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/quillcms/quill-backend/internal/domain"
)

type mockSchedulingService struct {
	mock.Mock
}

func (m *mockSchedulingService) Schedule(contentType domain.ContentType, contentID uint64, scheduledAt time.Time, organizationID uint64) (interface{}, error) {
	args := m.Called(contentType, contentID, scheduledAt, organizationID)
	return args.Get(0), args.Error(1)
}

func (m *mockSchedulingService) Unschedule(contentType domain.ContentType, contentID, organizationID uint64) (interface{}, error) {
	args := m.Called(contentType, contentID, organizationID)
	return args.Get(0), args.Error(1)
}

func (m *mockSchedulingService) DueContent() (*domain.DueContent, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DueContent), args.Error(1)
}

func (m *mockSchedulingService) PublishDue() *domain.PublishResult {
	return m.Called().Get(0).(*domain.PublishResult)
}

func (m *mockSchedulingService) Upcoming(ctx context.Context, organizationID uint64, limit int) ([]domain.UpcomingItem, error) {
	args := m.Called(ctx, organizationID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UpcomingItem), args.Error(1)
}

func setupCronRouter(svc *mockSchedulingService, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewCronHandler(svc, secret)
	router.POST("/cron/publish-scheduled", h.PublishScheduled)
	return router
}

func TestPublishScheduled_Success(t *testing.T) {
	svc := new(mockSchedulingService)
	svc.On("PublishDue").Return(&domain.PublishResult{Posts: 2, Pages: 1, Products: 0, Errors: []string{}})
	router := setupCronRouter(svc, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/cron/publish-scheduled", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	published := body["published"].(map[string]interface{})
	assert.Equal(t, float64(2), published["posts"])
	assert.Equal(t, float64(1), published["pages"])
	assert.Empty(t, body["errors"])
}

func TestPublishScheduled_PartialFailureStill200(t *testing.T) {
	svc := new(mockSchedulingService)
	svc.On("PublishDue").Return(&domain.PublishResult{
		Posts: 3, Errors: []string{"pages: lock wait timeout"},
	})
	router := setupCronRouter(svc, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/cron/publish-scheduled", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Len(t, body["errors"], 1)
}

func TestPublishScheduled_SecretRequired(t *testing.T) {
	svc := new(mockSchedulingService)
	router := setupCronRouter(svc, "trigger-secret")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/cron/publish-scheduled", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "PublishDue")
}

func TestPublishScheduled_SecretAccepted(t *testing.T) {
	svc := new(mockSchedulingService)
	svc.On("PublishDue").Return(&domain.PublishResult{Errors: []string{}})
	router := setupCronRouter(svc, "trigger-secret")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/cron/publish-scheduled", nil)
	req.Header.Set("Authorization", "Bearer trigger-secret")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestPublishScheduled_WrongSecretRejected(t *testing.T) {
	svc := new(mockSchedulingService)
	router := setupCronRouter(svc, "trigger-secret")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/cron/publish-scheduled", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "PublishDue")
}
