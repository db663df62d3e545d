// middleware/upgrade_guard.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edgegate-io/tunnelgate/model"
)

// UpgradeGuard rejects any protocol-upgrade request whose path is not a
// canonical /{id} admission attempt. Every other route serves plain HTTP
// only; an upgrade aimed at one of them gets the same uniform 401 as a
// malformed admission id, before the route handler runs.
func UpgradeGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.IsWebsocket() {
			return
		}
		if !model.ValidSubscriberID(strings.TrimPrefix(c.Request.URL.Path, "/")) {
			c.String(http.StatusUnauthorized, "Unauthorized")
			c.Abort()
		}
	}
}
