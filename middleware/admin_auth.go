// middleware/admin_auth.go
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/edgegate-io/tunnelgate/logging"
)

// ValidBearer reports whether an Authorization header carries the shared
// admin secret. Comparison is constant time.
func ValidBearer(header, secret string) bool {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
}

// AdminAuth enforces the shared bearer secret on the admin API. The
// presented credential is never logged.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ValidBearer(c.GetHeader("Authorization"), secret) {
			logger.Warn("Admin request with missing or invalid bearer credential",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
