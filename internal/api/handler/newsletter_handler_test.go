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
)

// MockNewsletterService is a mock implementation of service.NewsletterService
type MockNewsletterService struct {
	mock.Mock
}

func (m *MockNewsletterService) Subscribe(ctx context.Context, email string) (*dto.SubscribeResultDTO, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubscribeResultDTO), args.Error(1)
}

func setupNewsletterRouter(svc service.NewsletterService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/newsletter/subscribe", NewNewsletterHandler(svc).Subscribe)
	return r
}

func TestSubscribeHandler(t *testing.T) {
	mockSvc := new(MockNewsletterService)
	mockSvc.On("Subscribe", mock.Anything, "reader@example.com").
		Return(&dto.SubscribeResultDTO{Success: true, Message: "订阅成功！"}, nil)

	body, _ := json.Marshal(map[string]string{"email": "reader@example.com"})
	r := setupNewsletterRouter(mockSvc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	resp := decodeResponse(t, w)
	assert.Equal(t, 200, resp.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, true, data["success"])
	mockSvc.AssertExpectations(t)
}

func TestSubscribeHandlerInvalidEmail(t *testing.T) {
	mockSvc := new(MockNewsletterService)
	mockSvc.On("Subscribe", mock.Anything, "not-an-email").
		Return(nil, service.ErrEmailInvalid)

	body, _ := json.Marshal(map[string]string{"email": "not-an-email"})
	r := setupNewsletterRouter(mockSvc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	resp := decodeResponse(t, w)
	assert.Equal(t, 400, resp.Code)
	assert.Equal(t, service.ErrEmailInvalid.Error(), resp.Message)
}

func TestSubscribeHandlerMissingEmail(t *testing.T) {
	mockSvc := new(MockNewsletterService)

	r := setupNewsletterRouter(mockSvc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	resp := decodeResponse(t, w)
	assert.Equal(t, 400, resp.Code)
	mockSvc.AssertNotCalled(t, "Subscribe", mock.Anything, mock.Anything)
}
