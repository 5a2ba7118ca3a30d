package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"youtube-lite/domain/dto"
	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"
	httpHandler "youtube-lite/interfaces/http"
	"youtube-lite/usecase"
)

type MockVideoUsecase struct {
	mock.Mock
}

func (m *MockVideoUsecase) List(ctx context.Context) ([]model.Video, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockVideoUsecase) Get(ctx context.Context, videoID string) (*model.Video, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoUsecase) ListByChannel(ctx context.Context, channelUID string) ([]model.Video, error) {
	args := m.Called(ctx, channelUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockVideoUsecase) Search(ctx context.Context, req *dto.VideoSearchRequest) ([]model.Video, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockVideoUsecase) Create(ctx context.Context, userID, userName string, req *dto.VideoCreateRequest) (string, error) {
	args := m.Called(ctx, userID, userName, req)
	return args.String(0), args.Error(1)
}

func (m *MockVideoUsecase) Update(ctx context.Context, userID, videoID string, req *dto.VideoUpdateRequest) error {
	args := m.Called(ctx, userID, videoID, req)
	return args.Error(0)
}

func (m *MockVideoUsecase) Delete(ctx context.Context, userID, videoID string) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

type MockCounterUsecase struct {
	mock.Mock
}

func (m *MockCounterUsecase) RegisterView(ctx context.Context, sessionID, userID, videoID string) (*dto.ViewResponse, error) {
	args := m.Called(ctx, sessionID, userID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ViewResponse), args.Error(1)
}

func (m *MockCounterUsecase) Vote(ctx context.Context, userID, videoID, action string) (*dto.VoteResponse, error) {
	args := m.Called(ctx, userID, videoID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VoteResponse), args.Error(1)
}

func newVideoRouter(videoUC *MockVideoUsecase, counterUC *MockCounterUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := httpHandler.NewVideoHandler(videoUC, counterUC)
	router := gin.New()
	router.GET("/videos", h.List)
	router.GET("/videos/search", h.Search)
	router.GET("/videos/:videoId", h.Get)
	router.POST("/videos/:videoId/view", h.RegisterView)
	router.PATCH("/videos/:videoId", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		h.Update(c)
	})
	return router
}

func TestGetVideo_ReturnsRequestedID(t *testing.T) {
	videoUC := new(MockVideoUsecase)
	router := newVideoRouter(videoUC, new(MockCounterUsecase))
	videoUC.On("Get", mock.Anything, "v1").Return(&model.Video{ID: "v1", Title: "T"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/videos/v1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"v1"`)
}

func TestGetVideo_NotFoundIsExplicit(t *testing.T) {
	videoUC := new(MockVideoUsecase)
	router := newVideoRouter(videoUC, new(MockCounterUsecase))
	videoUC.On("Get", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/videos/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestSearch_RequiresQuery(t *testing.T) {
	router := newVideoRouter(new(MockVideoUsecase), new(MockCounterUsecase))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/videos/search", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterView_SessionFromHeader(t *testing.T) {
	counterUC := new(MockCounterUsecase)
	router := newVideoRouter(new(MockVideoUsecase), counterUC)
	counterUC.On("RegisterView", mock.Anything, "sess-1", "", "v1").
		Return(&dto.ViewResponse{Counted: true, Views: 11}, nil)

	req := httptest.NewRequest(http.MethodPost, "/videos/v1/view", nil)
	req.Header.Set("X-Session-Id", "sess-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"counted":true`)
	counterUC.AssertExpectations(t)
}

func TestUpdateVideo_ForbiddenForNonOwner(t *testing.T) {
	videoUC := new(MockVideoUsecase)
	router := newVideoRouter(videoUC, new(MockCounterUsecase))
	videoUC.On("Update", mock.Anything, "user-1", "v1", mock.Anything).Return(usecase.ErrForbidden)

	req := httptest.NewRequest(http.MethodPatch, "/videos/v1", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
