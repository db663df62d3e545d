// controller/doh_controller.go
package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/edgegate-io/tunnelgate/logging"
	"github.com/edgegate-io/tunnelgate/service"
)

type DoHController struct {
	dohService service.IDoHService
}

func NewDoHController(dohService service.IDoHService) *DoHController {
	return &DoHController{dohService: dohService}
}

// RegisterRoutes registers the DNS relay routes
func (dc *DoHController) RegisterRoutes(r *gin.Engine) {
	r.GET("/dns-query", dc.RelayGet)
	r.POST("/dns-query", dc.RelayPost)
}

// RelayGet forwards a query carried in the base64url dns parameter.
func (dc *DoHController) RelayGet(c *gin.Context) {
	dnsParam := c.Query("dns")
	if dnsParam == "" {
		c.String(http.StatusBadRequest, "Invalid DoH request")
		return
	}

	resp, err := dc.dohService.ForwardGet(c.Request.Context(), dnsParam)
	if err != nil {
		logger.Error("DoH upstream request failed", zap.Error(err))
		c.String(http.StatusBadGateway, "Failed to connect to DoH upstream")
		return
	}
	dc.mirror(c, resp)
}

// RelayPost forwards a query carried as a raw DNS wire message body.
func (dc *DoHController) RelayPost(c *gin.Context) {
	resp, err := dc.dohService.ForwardPost(c.Request.Context(), c.Request.Body)
	if err != nil {
		logger.Error("DoH upstream request failed", zap.Error(err))
		c.String(http.StatusBadGateway, "Failed to connect to DoH upstream")
		return
	}
	dc.mirror(c, resp)
}

// mirror streams the upstream response back unchanged: status, headers
// and body.
func (dc *DoHController) mirror(c *gin.Context, resp *http.Response) {
	defer resp.Body.Close()

	header := c.Writer.Header()
	for k, vals := range resp.Header {
		header[k] = vals
	}
	c.Status(resp.StatusCode)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		logger.Warn("DoH response relay interrupted", zap.Error(err))
	}
}
