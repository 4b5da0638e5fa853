package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Sehar1999/applicant-tracking-system/internal/config"
	"github.com/Sehar1999/applicant-tracking-system/internal/handlers"
	"github.com/Sehar1999/applicant-tracking-system/internal/middlewares"
	"github.com/Sehar1999/applicant-tracking-system/internal/models"
	"github.com/Sehar1999/applicant-tracking-system/internal/repositories"
	"github.com/Sehar1999/applicant-tracking-system/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	attachmentRepo := repositories.NewAttachmentRepository(db)
	jdRepo := repositories.NewJobDescriptionRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	blobStore := services.NewDiskBlobStore(cfg.Storage.UploadPath)
	if err := blobStore.EnsureRoot(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	extractor := services.NewTextExtractor()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	scorer := services.NewMatchScorer(
		geminiService,
		cfg.Comparison.ScoringTimeout,
		cfg.Comparison.RetryMaxAttempts,
	)

	resolver := services.NewFileResolver(attachmentRepo, blobStore)
	comparisonService := services.NewComparisonService(
		jdRepo,
		attachmentRepo,
		blobStore,
		resolver,
		extractor,
		scorer,
	)
	log.Println("✅ Comparison service initialized")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, tokenService)
	fileHandler := handlers.NewFileHandler(attachmentRepo, blobStore, cfg.Storage.MaxFileSize)
	jobHandler := handlers.NewJobHandler(jdRepo)
	compareHandler := handlers.NewCompareHandler(comparisonService, cfg.Storage.MaxFileSize)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Applicant Tracking System API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) * 6,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.HandleSignup)
	auth.Post("/login", authHandler.HandleLogin)

	authenticated := middlewares.Authenticate(tokenService, userRepo)

	files := api.Group("/files", authenticated)
	files.Post("/upload", fileHandler.HandleUpload)
	files.Put("/profile-picture", fileHandler.HandleUpdateProfilePicture)
	files.Get("/my-files", fileHandler.HandleMyFiles)
	files.Get("/fetch/:fileId", fileHandler.HandleFetch)
	files.Post("/compare", compareHandler.HandleCompare)
	files.Delete("/:fileId", fileHandler.HandleDelete)

	jobs := api.Group("/jobs", authenticated)
	jobs.Post("/", jobHandler.HandleCreate)
	jobs.Get("/", jobHandler.HandleList)
	jobs.Get("/:id", jobHandler.HandleGet)
	jobs.Put("/:id", jobHandler.HandleUpdate)
	jobs.Delete("/:id", jobHandler.HandleDelete)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Applicant Tracking System API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/auth/signup",
				"POST /api/auth/login",
				"POST /api/files/upload",
				"POST /api/files/compare",
				"GET /api/files/my-files",
				"GET /api/jobs",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.APIResponse{
		Success: false,
		Message: err.Error(),
	})
}
