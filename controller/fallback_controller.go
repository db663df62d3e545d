// controller/fallback_controller.go
package controller

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/edgegate-io/tunnelgate/logging"
)

// FallbackController proxies every unrecognized request to the
// configured disguise domain, so probing the gateway looks like hitting
// an ordinary website.
type FallbackController struct {
	proxy *httputil.ReverseProxy
}

func NewFallbackController(domain string) *FallbackController {
	target := &url.URL{Scheme: "https", Host: domain}
	proxy := httputil.NewSingleHostReverseProxy(target)

	director := proxy.Director
	proxy.Director = func(req *http.Request) {
		director(req)
		req.Host = domain
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Warn("Fallback proxy failed", zap.Error(err), zap.String("path", r.URL.Path))
		w.WriteHeader(http.StatusBadGateway)
	}

	return &FallbackController{proxy: proxy}
}

func (fc *FallbackController) Handle(c *gin.Context) {
	fc.proxy.ServeHTTP(c.Writer, c.Request)
	c.Abort()
}
