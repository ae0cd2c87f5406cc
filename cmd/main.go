package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"collabriq-backend/internal/config"
	"collabriq-backend/internal/features/audit_logs"
	"collabriq-backend/internal/features/discussions"
	hierarchy_controllers "collabriq-backend/internal/features/hierarchy/controllers"
	hierarchy_services "collabriq-backend/internal/features/hierarchy/services"
	"collabriq-backend/internal/features/sales"
	"collabriq-backend/internal/features/system/healthcheck"
	users_controllers "collabriq-backend/internal/features/users/controllers"
	users_middleware "collabriq-backend/internal/features/users/middleware"
	users_services "collabriq-backend/internal/features/users/services"
	workspaces_controllers "collabriq-backend/internal/features/workspaces/controllers"
	workspaces_services "collabriq-backend/internal/features/workspaces/services"
	"collabriq-backend/internal/storage"
	env_utils "collabriq-backend/internal/util/env"
	files_utils "collabriq-backend/internal/util/files"
	"collabriq-backend/internal/util/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

var log = logger.GetLogger()

func main() {
	env := config.GetEnv()

	// Connects and runs migrations on first touch.
	storage.GetDb()

	setUpDependencies()
	runBackgroundTasks()

	if env.EnvMode == env_utils.EnvModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	if env.EnvMode == env_utils.EnvModeDevelopment {
		router.Use(cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:   []string{"Content-Length", "Content-Disposition"},
			MaxAge:          12 * time.Hour,
		}))
	}

	setUpRoutes(router)

	server := &http.Server{
		Addr:    ":" + env.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Info("Starting server", "port", env.HTTPPort)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", "error", err)
	}

	log.Info("Server stopped")
}

func setUpRoutes(router *gin.Engine) {
	public := router.Group("/api/v1")
	healthcheck.GetHealthcheckController().RegisterRoutes(public)
	users_controllers.GetUserController().RegisterPublicRoutes(public)

	protected := router.Group("/api/v1")
	protected.Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	users_controllers.GetUserController().RegisterProtectedRoutes(protected)
	workspaces_controllers.GetWorkspaceController().RegisterRoutes(protected)
	workspaces_controllers.GetMembershipController().RegisterRoutes(protected)
	hierarchy_controllers.GetFolderController().RegisterRoutes(protected)
	hierarchy_controllers.GetFileController().RegisterRoutes(protected)
	discussions.GetDiscussionController().RegisterRoutes(protected)
	sales.GetSaleController().RegisterRoutes(protected)
	audit_logs.GetAuditLogController().RegisterRoutes(protected)
}

func setUpDependencies() {
	audit_logs.SetupDependencies()
	workspaces_services.SetupDependencies()
	hierarchy_services.SetupDependencies()
	discussions.SetupDependencies()
}

func runBackgroundTasks() {
	if err := files_utils.CleanFolder(config.GetEnv().TempFolder); err != nil {
		log.Warn("Failed to clean temp folder", "error", err)
	}

	scheduler := cron.New()

	_, err := scheduler.AddFunc("@hourly", func() {
		users_services.GetTokenJanitor().PurgeExpiredTokens()
	})
	if err != nil {
		log.Error("Failed to schedule token janitor", "error", err)
		os.Exit(1)
	}

	scheduler.Start()
}
