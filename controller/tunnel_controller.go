// controller/tunnel_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/edgegate-io/tunnelgate/logging"
	"github.com/edgegate-io/tunnelgate/model"
	"github.com/edgegate-io/tunnelgate/service"
)

type TunnelController struct {
	admissionService service.IAdmissionService
	tunnelService    service.ITunnelService
}

func NewTunnelController(admissionService service.IAdmissionService, tunnelService service.ITunnelService) *TunnelController {
	return &TunnelController{
		admissionService: admissionService,
		tunnelService:    tunnelService,
	}
}

// Admit gates a protocol-upgrade request. A malformed id is rejected
// before any cache or store access; an unauthorized id gets the same
// uniform 401 with no further detail.
func (tc *TunnelController) Admit(c *gin.Context) {
	subscriberID := c.Param("id")
	if !model.ValidSubscriberID(subscriberID) {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	if !tc.admissionService.IsAuthorized(c.Request.Context(), subscriberID) {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := tc.tunnelService.Relay(c.Writer, c.Request); err != nil {
		// The connection may already be hijacked; all that is left is
		// to record the failure.
		logger.Error("Tunnel relay failed",
			zap.Error(err),
			zap.String("subscriberID", subscriberID))
	}
	c.Abort()
}
