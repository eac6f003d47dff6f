package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/service"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPostActionService is a mock implementation of service.PostActionService
type MockPostActionService struct {
	mock.Mock
}

func (m *MockPostActionService) ToggleLike(ctx context.Context, userID uint64, slug string) (*dto.LikeResultDTO, error) {
	args := m.Called(ctx, userID, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LikeResultDTO), args.Error(1)
}

func (m *MockPostActionService) AddComment(ctx context.Context, userID uint64, slug string, req *dto.CommentCreateDTO) (*dto.CommentResultDTO, error) {
	args := m.Called(ctx, userID, slug, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResultDTO), args.Error(1)
}

func setupActionRouter(svc service.PostActionService, userID uint64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})

	h := NewPostActionHandler(svc)
	r.POST("/api/posts/:slug/like", h.ToggleLike)
	r.POST("/api/posts/:slug/comments", h.AddComment)
	return r
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) *dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return &resp
}

func TestToggleLikeHandler(t *testing.T) {
	mockSvc := new(MockPostActionService)
	mockSvc.On("ToggleLike", mock.Anything, uint64(7), "liked-post").
		Return(&dto.LikeResultDTO{Liked: true, LikeCount: 3}, nil)

	r := setupActionRouter(mockSvc, 7)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts/liked-post/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, 200, resp.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, true, data["liked"])
	assert.EqualValues(t, 3, data["like_count"])
	mockSvc.AssertExpectations(t)
}

func TestToggleLikeHandlerPostMissing(t *testing.T) {
	mockSvc := new(MockPostActionService)
	mockSvc.On("ToggleLike", mock.Anything, uint64(7), "gone").
		Return(nil, service.ErrPostNotFound)

	r := setupActionRouter(mockSvc, 7)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts/gone/like", nil)
	r.ServeHTTP(w, req)

	resp := decodeResponse(t, w)
	assert.Equal(t, 404, resp.Code)
	assert.Equal(t, service.ErrPostNotFound.Error(), resp.Message)
}

func TestAddCommentHandler(t *testing.T) {
	mockSvc := new(MockPostActionService)
	mockSvc.On("AddComment", mock.Anything, uint64(7), "open-thread", mock.MatchedBy(func(req *dto.CommentCreateDTO) bool {
		return req.Content == "nice read" && req.ParentID == nil
	})).Return(&dto.CommentResultDTO{AuthorName: "alice", Content: "nice read"}, nil)

	body, _ := json.Marshal(map[string]interface{}{"content": "nice read"})
	r := setupActionRouter(mockSvc, 7)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts/open-thread/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	resp := decodeResponse(t, w)
	assert.Equal(t, 200, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestAddCommentHandlerMissingContent(t *testing.T) {
	mockSvc := new(MockPostActionService)

	r := setupActionRouter(mockSvc, 7)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts/open-thread/comments", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// 绑定校验失败，服务层不应被调用
	resp := decodeResponse(t, w)
	assert.Equal(t, 400, resp.Code)
	mockSvc.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
