// controller/subscriber_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edgegate-io/tunnelgate/model"
	"github.com/edgegate-io/tunnelgate/service"
	"github.com/edgegate-io/tunnelgate/util"
)

// subscriberPage is the minimal shell served on /{id}; full panel
// rendering is handled outside the gateway.
const subscriberPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Subscription</title></head>
<body><p>Your subscription endpoints: /xray/{id}, /sb/{id}, /clash/{id}</p></body>
</html>
`

type SubscriberController struct {
	profileService   service.IProfileService
	subConfigService service.ISubConfigService
	fallback         *FallbackController
}

func NewSubscriberController(profileService service.IProfileService, subConfigService service.ISubConfigService, fallback *FallbackController) *SubscriberController {
	return &SubscriberController{
		profileService:   profileService,
		subConfigService: subConfigService,
		fallback:         fallback,
	}
}

// Page serves the subscriber-facing landing page.
func (sc *SubscriberController) Page(c *gin.Context) {
	if !sc.requireSubscriberID(c) {
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(subscriberPage))
}

// Info returns the caller's geolocation paired with the tunnel-exit
// identity.
func (sc *SubscriberController) Info(c *gin.Context) {
	if !sc.requireSubscriberID(c) {
		return
	}

	profile, err := sc.profileService.GetProfile(c.Request.Context(), c.ClientIP())
	if err != nil {
		util.RespondWithError(c, http.StatusBadGateway, "Failed to resolve client info", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// XrayConfig endpoint
func (sc *SubscriberController) XrayConfig(c *gin.Context) {
	if !sc.requireSubscriberID(c) {
		return
	}
	c.String(http.StatusOK, sc.subConfigService.XrayConfig(c.Param("id")))
}

// SingBoxConfig endpoint
func (sc *SubscriberController) SingBoxConfig(c *gin.Context) {
	if !sc.requireSubscriberID(c) {
		return
	}

	out, err := sc.subConfigService.SingBoxConfig(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to render config", err)
		return
	}
	c.String(http.StatusOK, out)
}

// ClashConfig endpoint
func (sc *SubscriberController) ClashConfig(c *gin.Context) {
	if !sc.requireSubscriberID(c) {
		return
	}

	out, err := sc.subConfigService.ClashConfig(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to render config", err)
		return
	}
	c.String(http.StatusOK, out)
}

// requireSubscriberID gates subscriber-scoped paths on the opaque id
// shape. A path whose id segment does not match falls through to the
// disguise target, exactly like any other unrecognized path.
func (sc *SubscriberController) requireSubscriberID(c *gin.Context) bool {
	if model.ValidSubscriberID(c.Param("id")) {
		return true
	}
	sc.fallback.Handle(c)
	return false
}
