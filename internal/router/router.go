package router

import (
	"github.com/gin-gonic/gin"

	"qtrack/internal/config"
	"qtrack/internal/domain"
	"qtrack/internal/handler"
	"qtrack/internal/middleware"
	"qtrack/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	projectH *handler.ProjectHandler,
	docTypeH *handler.DocTypeHandler,
	uploadH *handler.UploadHandler,
	documentH *handler.DocumentHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// User management
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), userH.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), userH.List)
	users.GET("/:id", userH.GetByID)
	users.PUT("/:id", userH.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), userH.Delete)

	// Projects and their document slots
	projects := protected.Group("/projects")
	projects.POST("", projectH.Create)
	projects.GET("", projectH.List)
	projects.GET("/:id", projectH.GetByID)
	projects.PUT("/:id", projectH.Update)
	projects.POST("/:id/cancel", middleware.RequireRole(domain.RoleAdmin), projectH.Cancel)
	projects.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), projectH.Delete)
	projects.GET("/:id/documents", projectH.Documents)
	projects.GET("/:id/pending", projectH.Pending)
	projects.GET("/:id/audit", projectH.AuditTrail)
	projects.GET("/:id/slots/:code", projectH.Slot)
	projects.GET("/:id/slots/:code/revisions", projectH.Revisions)
	projects.GET("/:id/slots/:code/delegates", projectH.ListDelegates)
	projects.PUT("/:id/slots/:code/delegates", middleware.RequireRole(domain.RoleAdmin), projectH.SetDelegates)

	// Document-type registry
	docTypes := protected.Group("/doc-types")
	docTypes.POST("", middleware.RequireRole(domain.RoleAdmin), docTypeH.Create)
	docTypes.GET("", docTypeH.List)
	docTypes.GET("/:code", docTypeH.GetByCode)
	docTypes.PUT("/:code", middleware.RequireRole(domain.RoleAdmin), docTypeH.Update)

	// Uploads
	uploads := protected.Group("/uploads")
	uploads.POST("/batch", uploadH.Batch)
	uploads.POST("/manual", uploadH.Manual)
	uploads.GET("/preview", uploadH.Preview)

	// Pending decision queue
	pending := protected.Group("/pending")
	pending.GET("", documentH.ListPending)
	pending.POST("/:id/approve", documentH.Approve)
	pending.POST("/:id/reject", documentH.Reject)
	pending.POST("/:id/cancel", documentH.Cancel)

	// Stored file access
	protected.GET("/files/url", documentH.FileURL)

	// Reports
	reports := protected.Group("/reports")
	reports.GET("/completion", reportH.Completion)
	reports.GET("/completion/export", reportH.ExportXLSX)

	return r
}
