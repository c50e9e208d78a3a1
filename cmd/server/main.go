package main

import (
	"fmt"
	"log"

	"qtrack/internal/config"
	"qtrack/internal/email/noop"
	"qtrack/internal/email/ses"
	"qtrack/internal/handler"
	"qtrack/internal/matching"
	"qtrack/internal/port"
	"qtrack/internal/repository/postgres"
	"qtrack/internal/router"
	"qtrack/internal/service"
	s3storage "qtrack/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	projectRepo := postgres.NewProjectRepo(db)
	docTypeRepo := postgres.NewDocTypeRepo(db)
	pendingRepo := postgres.NewPendingUploadRepo(db)
	revisionRepo := postgres.NewRevisionRepo(db)
	docRepo := postgres.NewProjectDocumentRepo(db)
	fileRepo := postgres.NewDocumentFileRepo(db)
	auditRepo := postgres.NewAuditRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize matching
	cache := matching.NewProjectCache(projectRepo)
	matcher := matching.NewMatcher(cache, &cfg.Matching)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	projectSvc := service.NewProjectService(projectRepo, docRepo, docTypeRepo, auditRepo, cache)
	docTypeSvc := service.NewDocTypeService(docTypeRepo)
	revisionSvc := service.NewRevisionService(
		projectRepo, docTypeRepo, pendingRepo, revisionRepo, docRepo, fileRepo,
		userRepo, auditRepo, s3Client, emailSender, cache, &cfg.S3)
	uploadSvc := service.NewUploadService(docTypeRepo, matcher, revisionSvc)
	reportSvc := service.NewReportService(projectRepo, docTypeRepo, docRepo, fileRepo, pendingRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	projectH := handler.NewProjectHandler(projectSvc, revisionSvc)
	docTypeH := handler.NewDocTypeHandler(docTypeSvc)
	uploadH := handler.NewUploadHandler(uploadSvc, revisionSvc)
	documentH := handler.NewDocumentHandler(revisionSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, userH, projectH, docTypeH, uploadH, documentH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
