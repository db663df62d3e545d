// controller/subscriber_controller_test.go
package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/edgegate-io/tunnelgate/controller"
	gateway_errors "github.com/edgegate-io/tunnelgate/errors"
	logger "github.com/edgegate-io/tunnelgate/logging"
	"github.com/edgegate-io/tunnelgate/model"
	mock_service "github.com/edgegate-io/tunnelgate/test/service_mock"
)

// fallthroughRequest builds a request with a cancelable context. The
// reverse proxy behind the disguise route needs a context with a Done
// channel; a bare http.NewRequest context has none and makes the proxy
// reach for CloseNotify, which the test recorder cannot provide.
func fallthroughRequest(t *testing.T, path string) *http.Request {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	req, _ := http.NewRequestWithContext(ctx, "GET", path, nil)
	return req
}

func TestSubscriberController(t *testing.T) {
	logger.InitLogger("")
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileService := mock_service.NewMockIProfileService(ctrl)
	mockSubConfigService := mock_service.NewMockISubConfigService(ctrl)
	// The disguise target is unreachable here, so a fall-through shows up
	// as the proxy's 502 rather than real disguise content.
	fallback := controller.NewFallbackController("127.0.0.1:1")
	subscriberController := controller.NewSubscriberController(mockProfileService, mockSubConfigService, fallback)

	router := gin.New()
	router.GET("/:id", subscriberController.Page)
	router.GET("/:id/info", subscriberController.Info)
	router.GET("/xray/:id", subscriberController.XrayConfig)
	router.GET("/sb/:id", subscriberController.SingBoxConfig)
	router.GET("/clash/:id", subscriberController.ClashConfig)

	t.Run("Page_ValidID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/"+adminID, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	})

	t.Run("Page_InvalidID_FallsThroughToDisguise", func(t *testing.T) {
		// No service expectations: a bad id never reaches any service.
		w := httptest.NewRecorder()
		req := fallthroughRequest(t, "/not-a-subscriber-id")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("Info_Success", func(t *testing.T) {
		mockProfileService.EXPECT().
			GetProfile(gomock.Any(), gomock.Any()).
			Return(&model.Profile{
				ClientInfo: model.ClientInfo{Status: "success", Country: "Germany"},
				ProxyInfo:  model.ProxyInfo{IP: "198.51.100.9"},
			}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/"+adminID+"/info", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"clientInfo"`)
		assert.Contains(t, w.Body.String(), `"198.51.100.9"`)
	})

	t.Run("Info_UpstreamFailure_BadGateway", func(t *testing.T) {
		mockProfileService.EXPECT().
			GetProfile(gomock.Any(), gomock.Any()).
			Return(nil, gateway_errors.ErrUpstreamFailure)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/"+adminID+"/info", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("XrayConfig_Success", func(t *testing.T) {
		mockSubConfigService.EXPECT().
			XrayConfig(adminID).
			Return("vless://" + adminID + "@edge.example.com:443\n")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/xray/"+adminID, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "vless://"+adminID)
	})

	t.Run("XrayConfig_InvalidID_FallsThroughToDisguise", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := fallthroughRequest(t, "/xray/not-a-subscriber-id")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("SingBoxConfig_Success", func(t *testing.T) {
		mockSubConfigService.EXPECT().
			SingBoxConfig(adminID).
			Return(`{"outbounds":[]}`, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/sb/"+adminID, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ClashConfig_Success", func(t *testing.T) {
		mockSubConfigService.EXPECT().
			ClashConfig(adminID).
			Return("proxies: []\n", nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/clash/"+adminID, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
