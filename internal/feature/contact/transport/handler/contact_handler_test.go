package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealth_backend/internal/feature/contact/domain/entity"
	"wealth_backend/internal/platform/validation"
)

type mockContactUsecase struct {
	SubmitFunc func(ctx context.Context, name, email, message string) (*entity.ContactMessage, error)
	calls      int
}

func (m *mockContactUsecase) Submit(ctx context.Context, name, email, message string) (*entity.ContactMessage, error) {
	m.calls++
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, name, email, message)
	}
	return &entity.ContactMessage{ID: "msg-1", Name: name, Email: email, Message: message}, nil
}

func TestContactHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validation.Init()

	tests := []struct {
		name           string
		body           string
		submitErr      error
		expectedStatus int
		expectedBody   map[string]any
		expectCall     bool
	}{
		{
			name:           "success",
			body:           `{"name":"Jane","email":"jane@example.com","message":"Hello"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]any{"message": "Message sent successfully"},
			expectCall:     true,
		},
		{
			name:           "invalid email",
			body:           `{"name":"Jane","email":"jane","message":"Hello"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody: map[string]any{
				"detail":  "invalid request",
				"code":    "INVALID_REQUEST",
				"details": map[string]any{"email": "must be a valid email address"},
			},
		},
		{
			name:           "missing message",
			body:           `{"name":"Jane","email":"jane@example.com"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody: map[string]any{
				"detail":  "invalid request",
				"code":    "INVALID_REQUEST",
				"details": map[string]any{"message": "is required"},
			},
		},
		{
			name:           "storage failure",
			body:           `{"name":"Jane","email":"jane@example.com","message":"Hello"}`,
			submitErr:      errors.New("db down"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]any{"detail": "internal server error", "code": "INTERNAL_ERROR"},
			expectCall:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockContactUsecase{}
			if tt.submitErr != nil {
				uc.SubmitFunc = func(context.Context, string, string, string) (*entity.ContactMessage, error) {
					return nil, tt.submitErr
				}
			}
			router := gin.New()
			router.POST("/contact", NewContactHandler(uc).Submit)

			req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedBody, body)
			assert.Equal(t, tt.expectCall, uc.calls == 1)
		})
	}
}
