// controller/admin_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/edgegate-io/tunnelgate/audit"
	"github.com/edgegate-io/tunnelgate/controller"
	gateway_errors "github.com/edgegate-io/tunnelgate/errors"
	logger "github.com/edgegate-io/tunnelgate/logging"
	"github.com/edgegate-io/tunnelgate/middleware"
	"github.com/edgegate-io/tunnelgate/model"
	mock_audit "github.com/edgegate-io/tunnelgate/test/audit_mock"
	mock_service "github.com/edgegate-io/tunnelgate/test/service_mock"
)

const (
	adminSecret = "test-admin-secret"
	adminBearer = "Bearer " + adminSecret
	adminID     = "d342d11e-d424-4583-b36e-524ab1f0afa4"
)

func TestAdminController(t *testing.T) {
	logger.InitLogger("")
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSubscriberService := mock_service.NewMockISubscriberService(ctrl)
	mockAuditService := mock_audit.NewMockService(ctrl)
	adminController := controller.NewAdminController(mockSubscriberService, mockAuditService)
	router := gin.New()
	api := router.Group("/admin/api", middleware.AdminAuth(adminSecret))
	adminController.RegisterRoutes(api)

	t.Run("List_MissingBearer_Unauthorized", func(t *testing.T) {
		// No service expectation: nothing may leak past the auth gate.
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin/api/users", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	})

	t.Run("List_WrongBearer_Unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin/api/users", nil)
		req.Header.Set("Authorization", "Bearer wrong-secret")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("List_Success", func(t *testing.T) {
		subs := []*model.Subscriber{
			{ID: adminID, Status: model.StatusActive, ExpirationTimestamp: 2000000000},
		}
		mockSubscriberService.EXPECT().
			ListSubscribers(gomock.Any()).
			Return(subs, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin/api/users", nil)
		req.Header.Set("Authorization", adminBearer)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []model.Subscriber
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Len(t, got, 1)
		assert.Equal(t, adminID, got[0].ID)
	})

	t.Run("List_Empty_ReturnsEmptyArray", func(t *testing.T) {
		mockSubscriberService.EXPECT().
			ListSubscribers(gomock.Any()).
			Return(nil, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin/api/users", nil)
		req.Header.Set("Authorization", adminBearer)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Upsert_Success", func(t *testing.T) {
		mockSubscriberService.EXPECT().
			UpsertSubscriber(gomock.Any(), gomock.Any()).
			Return(&model.Subscriber{ID: adminID, Status: model.StatusActive}, nil)

		body := strings.NewReader(`{"expiration_timestamp":2000000000,"notes":"trial"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin/api/users", body)
		req.Header.Set("Authorization", adminBearer)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got map[string]interface{}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, true, got["success"])
		assert.Equal(t, adminID, got["id"])
	})

	t.Run("Upsert_Failure_BadBody", func(t *testing.T) {
		body := strings.NewReader(`{"expiration_timestamp":"not-a-number"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin/api/users", body)
		req.Header.Set("Authorization", adminBearer)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Upsert_Failure_MissingExpiry", func(t *testing.T) {
		body := strings.NewReader(`{"notes":"no expiry"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin/api/users", body)
		req.Header.Set("Authorization", adminBearer)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Upsert_Failure_Store", func(t *testing.T) {
		mockSubscriberService.EXPECT().
			UpsertSubscriber(gomock.Any(), gomock.Any()).
			Return(nil, gateway_errors.ErrDatabaseOperation)

		body := strings.NewReader(`{"expiration_timestamp":2000000000}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin/api/users", body)
		req.Header.Set("Authorization", adminBearer)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Delete_Success", func(t *testing.T) {
		mockSubscriberService.EXPECT().
			DeleteSubscriber(gomock.Any(), adminID).
			Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/admin/api/users/"+adminID, nil)
		req.Header.Set("Authorization", adminBearer)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Delete_MissingBearer_Unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/admin/api/users/"+adminID, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Audit_Success", func(t *testing.T) {
		mockAuditService.EXPECT().
			QueryLogs(gomock.Any(), gomock.Any(), gomock.Any(), adminID).
			Return([]audit.AuditLog{
				{SubscriberID: adminID, Action: "subscriber.updated"},
			}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin/api/audit?subscriber_id="+adminID, nil)
		req.Header.Set("Authorization", adminBearer)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "subscriber.updated")
	})

	t.Run("Audit_BadTimestamp_BadRequest", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin/api/audit?from=yesterday", nil)
		req.Header.Set("Authorization", adminBearer)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Audit_BackendFailure_BadGateway", func(t *testing.T) {
		mockAuditService.EXPECT().
			QueryLogs(gomock.Any(), gomock.Any(), gomock.Any(), "").
			Return(nil, gateway_errors.ErrUpstreamFailure)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin/api/audit", nil)
		req.Header.Set("Authorization", adminBearer)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("Audit_Disabled_ServiceUnavailable", func(t *testing.T) {
		disabled := controller.NewAdminController(mockSubscriberService, nil)
		disabledRouter := gin.New()
		disabled.RegisterRoutes(disabledRouter.Group("/admin/api", middleware.AdminAuth(adminSecret)))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin/api/audit", nil)
		req.Header.Set("Authorization", adminBearer)
		disabledRouter.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
