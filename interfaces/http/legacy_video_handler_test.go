package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"
	httpHandler "youtube-lite/interfaces/http"
	"youtube-lite/usecase"
)

type MockLegacyRepo struct {
	mock.Mock
}

func (m *MockLegacyRepo) List(ctx context.Context) ([]model.LegacyVideo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LegacyVideo), args.Error(1)
}

func (m *MockLegacyRepo) GetByID(ctx context.Context, id string) (*model.LegacyVideo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LegacyVideo), args.Error(1)
}

func (m *MockLegacyRepo) Search(ctx context.Context, term string, limit int) ([]model.LegacyVideo, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LegacyVideo), args.Error(1)
}

func newLegacyRouter(repo *MockLegacyRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := httpHandler.NewLegacyVideoHandler(usecase.NewLegacyUsecase(repo))
	router := gin.New()
	router.GET("/api/videos", h.List)
	router.GET("/api/videos/search", h.Search)
	router.GET("/api/videos/:id", h.Get)
	return router
}

func TestLegacyList_BackingStoreFailureStillReturns200(t *testing.T) {
	repo := new(MockLegacyRepo)
	router := newLegacyRouter(repo)
	repo.On("List", mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/videos", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var videos []model.LegacyVideo
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &videos))
	assert.Len(t, videos, 8)
	assert.Equal(t, "1", videos[0].ID)
	assert.Equal(t, "8", videos[7].ID)
}

func TestLegacyGet_LegacyFieldNames(t *testing.T) {
	repo := new(MockLegacyRepo)
	router := newLegacyRouter(repo)
	repo.On("GetByID", mock.Anything, "3").Return(&model.LegacyVideo{ID: "3", Title: "T", ThumbnailURL: "thumb.png"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/videos/3", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	// The old clients depend on these exact JSON keys.
	assert.Contains(t, w.Body.String(), `"_id":"3"`)
	assert.Contains(t, w.Body.String(), `"thumbnailUrl":"thumb.png"`)
}

func TestLegacyGet_UnknownIDOnHealthyStoreIs404(t *testing.T) {
	repo := new(MockLegacyRepo)
	router := newLegacyRouter(repo)
	repo.On("GetByID", mock.Anything, "999").Return(nil, repository.ErrNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/videos/999", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Video not found")
}

func TestLegacySearch_FiltersMockCatalogOnFailure(t *testing.T) {
	repo := new(MockLegacyRepo)
	router := newLegacyRouter(repo)
	repo.On("Search", mock.Anything, "lofi", 20).Return(nil, errors.New("down"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/videos/search?q=lofi", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var videos []model.LegacyVideo
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &videos))
	assert.Len(t, videos, 1)
	assert.Equal(t, "2", videos[0].ID)
}
