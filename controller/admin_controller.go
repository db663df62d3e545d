// controller/admin_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edgegate-io/tunnelgate/audit"
	"github.com/edgegate-io/tunnelgate/model"
	"github.com/edgegate-io/tunnelgate/service"
	"github.com/edgegate-io/tunnelgate/util"
)

// adminPanelPage is the minimal shell served on /admin; the full panel
// is rendered outside the gateway.
const adminPanelPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Admin</title></head>
<body><p>Admin API is mounted at /admin/api (bearer token required).</p></body>
</html>
`

type AdminController struct {
	subscriberService service.ISubscriberService
	auditService      audit.Service
}

func NewAdminController(subscriberService service.ISubscriberService, auditService audit.Service) *AdminController {
	return &AdminController{
		subscriberService: subscriberService,
		auditService:      auditService,
	}
}

// RegisterRoutes registers the admin API routes. The group is expected to
// carry the bearer-auth middleware already.
func (ac *AdminController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/users", ac.ListSubscribers)
	api.POST("/users", ac.UpsertSubscriber)
	api.DELETE("/users/:id", ac.DeleteSubscriber)
	api.GET("/audit", ac.AuditTrail)
}

// Panel serves the admin landing page.
func (ac *AdminController) Panel(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(adminPanelPage))
}

// ListSubscribers endpoint
func (ac *AdminController) ListSubscribers(c *gin.Context) {
	subs, err := ac.subscriberService.ListSubscribers(c.Request.Context())
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, err.Error(), err)
		return
	}

	if subs == nil {
		subs = []*model.Subscriber{}
	}
	c.JSON(http.StatusOK, subs)
}

// UpsertSubscriber endpoint
func (ac *AdminController) UpsertSubscriber(c *gin.Context) {
	var req model.UpsertSubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid subscriber data", err)
		return
	}

	sub, err := ac.subscriberService.UpsertSubscriber(c.Request.Context(), req)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, err.Error(), err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": sub.ID})
}

// DeleteSubscriber endpoint. Deleting an unknown id is a no-op success.
func (ac *AdminController) DeleteSubscriber(c *gin.Context) {
	subscriberID := c.Param("id")

	if err := ac.subscriberService.DeleteSubscriber(c.Request.Context(), subscriberID); err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, err.Error(), err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AuditTrail endpoint. Returns the indexed mutation history, optionally
// bounded by ?from=/?to= (RFC3339, default last 24h) and filtered by
// ?subscriber_id=.
func (ac *AdminController) AuditTrail(c *gin.Context) {
	if ac.auditService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Audit trail disabled"})
		return
	}

	to := time.Now()
	from := to.Add(-24 * time.Hour)
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid from timestamp", err)
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid to timestamp", err)
			return
		}
		to = parsed
	}

	logs, err := ac.auditService.QueryLogs(c.Request.Context(), from, to, c.Query("subscriber_id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadGateway, "Failed to query audit trail", err)
		return
	}

	if logs == nil {
		logs = []audit.AuditLog{}
	}
	c.JSON(http.StatusOK, logs)
}
