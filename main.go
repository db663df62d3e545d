package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/edgegate-io/tunnelgate/audit"
	"github.com/edgegate-io/tunnelgate/config"
	"github.com/edgegate-io/tunnelgate/controller"
	"github.com/edgegate-io/tunnelgate/dao"
	"github.com/edgegate-io/tunnelgate/db"
	logger "github.com/edgegate-io/tunnelgate/logging"
	"github.com/edgegate-io/tunnelgate/router"
	"github.com/edgegate-io/tunnelgate/service"
	"github.com/edgegate-io/tunnelgate/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Postgres
	if err := db.InitPostgres(); err != nil {
		logger.Fatal("Failed to initialize Postgres", zap.Error(err))
	}
	defer db.ClosePostgres()

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize services and utilities
	validationUtil := util.NewValidationUtil()
	cacheService := util.NewCacheService()
	notificationService := util.NewNotificationService()
	auditRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"))
	if err != nil {
		logger.Warn("Audit trail disabled", zap.Error(err))
	}
	var auditService audit.Service
	if auditRepository != nil {
		auditService = audit.NewService(auditRepository)
	}

	// Initialize DAOs
	subscriberDAO := dao.NewSubscriberDAO(db.Postgres, auditService)

	// Initialize services
	subscriberService := service.NewSubscriberService(
		subscriberDAO,
		cacheService,
		validationUtil,
		notificationService,
		eventBus,
	)
	admissionService := service.NewAdmissionService(
		cacheService,
		subscriberDAO,
		config.GetDuration("cache.negativeTTL"),
		config.GetDuration("cache.minTTL"),
	)
	profileService := service.NewProfileService(
		config.GetString("geo.endpoint"),
		config.GetString("geo.proxyIP"),
	)
	subConfigService := service.NewSubConfigService(config.GetString("sub.host"))
	dohService := service.NewDoHService(config.GetString("doh.upstream"))
	tunnelService := service.NewTunnelService(config.GetString("tunnel.backend"))

	// Initialize controllers
	fallbackController := controller.NewFallbackController(config.GetString("fallback.domain"))
	controllers := &controller.Controllers{
		Admin:      controller.NewAdminController(subscriberService, auditService),
		Subscriber: controller.NewSubscriberController(profileService, subConfigService, fallbackController),
		Tunnel:     controller.NewTunnelController(admissionService, tunnelService),
		DoH:        controller.NewDoHController(dohService),
		Fallback:   fallbackController,
	}

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(
		controllers,
		config.GetString("admin.key"),
		config.GetInt("ratelimit.requests"),
		config.GetDuration("ratelimit.window"),
	)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
