package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/blog-ms/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		header           string
		mockSetup        func(m *MockTokenVerifier)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name:             "NoToken",
			mockSetup:        func(m *MockTokenVerifier) {},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name:             "MalformedHeader",
			header:           "Token abc",
			mockSetup:        func(m *MockTokenVerifier) {},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name:   "RevokedToken",
			header: "Bearer sometoken",
			mockSetup: func(m *MockTokenVerifier) {
				m.EXPECT().VerifyToken(gomock.Any(), "sometoken").
					Return(int64(0), services.ErrUnauthorized)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name:   "AuthServiceDown",
			header: "Bearer sometoken",
			mockSetup: func(m *MockTokenVerifier) {
				m.EXPECT().VerifyToken(gomock.Any(), "sometoken").
					Return(int64(0), errors.New("connection refused"))
			},
			expectedStatus:   http.StatusInternalServerError,
			expectNextCalled: false,
		},
		{
			name:   "ValidToken",
			header: "Bearer validtoken",
			mockSetup: func(m *MockTokenVerifier) {
				m.EXPECT().VerifyToken(gomock.Any(), "validtoken").
					Return(int64(9), nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := NewMockTokenVerifier(ctrl)
			tt.mockSetup(verifier)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, int64(9), UserIDFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(verifier)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}
