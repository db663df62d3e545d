// router/router.go

package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edgegate-io/tunnelgate/controller"
	"github.com/edgegate-io/tunnelgate/middleware"
)

// SetupRouter wires every handler in fixed priority order: the admin
// surface, tunnel admission for protocol-upgrade requests, subscriber
// info/config paths, the DNS relay, legacy aliases, and finally the
// disguise fallback for everything else.
func SetupRouter(
	controllers *controller.Controllers,
	adminKey string,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.UpgradeGuard())

	// Admin surface
	admin := router.Group("/admin")
	admin.GET("", controllers.Admin.Panel)
	admin.GET("/", controllers.Admin.Panel)
	api := admin.Group("/api",
		middleware.RateLimiter(rateLimitRequests, rateLimitDuration),
		middleware.AdminAuth(adminKey),
	)
	controllers.Admin.RegisterRoutes(api)

	// DNS relay
	controllers.DoH.RegisterRoutes(router)

	// Subscriber-scoped paths. A protocol-upgrade request to /{id} is a
	// tunnel admission attempt; anything else on /{id} is the
	// subscriber page.
	router.GET("/:id", func(c *gin.Context) {
		if c.IsWebsocket() {
			controllers.Tunnel.Admit(c)
			return
		}
		controllers.Subscriber.Page(c)
	})
	router.GET("/:id/info", controllers.Subscriber.Info)
	router.GET("/xray/:id", controllers.Subscriber.XrayConfig)
	router.GET("/sb/:id", controllers.Subscriber.SingBoxConfig)
	router.GET("/clash/:id", controllers.Subscriber.ClashConfig)

	// Legacy aliases from the previous panel layout
	for _, alias := range []string{"/panel", "/login", "/logout", "/secrets"} {
		router.GET(alias, func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/admin/")
		})
	}
	router.GET("/sub/:id", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/xray/"+c.Param("id"))
	})
	router.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	// Stray upgrade requests never reach here; UpgradeGuard has already
	// rejected them.
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path

		if strings.HasPrefix(path, "/admin/api") {
			if !middleware.ValidBearer(c.GetHeader("Authorization"), adminKey) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
			return
		}
		if strings.HasPrefix(path, "/admin") {
			c.String(http.StatusNotFound, "Not Found")
			return
		}

		controllers.Fallback.Handle(c)
	})

	return router
}
