package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGetNotificationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockNotificationsGetter(ctrl)

	mockSvc.EXPECT().GetUserNotifications(gomock.Any(), int64(2)).Return([]models.NotificationDTO{}, nil)
	rr := httptest.NewRecorder()
	NewGetNotificationsHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/notifications?userId=2", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = httptest.NewRecorder()
	NewGetNotificationsHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/notifications?userId=two", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Malformed request"}`, rr.Body.String())
}

func TestRemoveNotificationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockNotificationRemover(ctrl)

	tests := []struct {
		name         string
		removed      bool
		mockErr      error
		expectedCode int
		expectedBody string
	}{
		{name: "removed", removed: true, expectedCode: http.StatusOK, expectedBody: `{"removed":true}`},
		{name: "missing", removed: false, expectedCode: http.StatusNotFound, expectedBody: `{"message":"Not found"}`},
		{name: "failure", mockErr: errors.New("db"), expectedCode: http.StatusInternalServerError, expectedBody: `{"message":"Unexpected exception"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc.EXPECT().RemoveNotification(gomock.Any(), int64(5)).Return(tt.removed, tt.mockErr)

			rr := httptest.NewRecorder()
			NewRemoveNotificationHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/notification?id=5", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
