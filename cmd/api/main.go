package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/thanhdanh14/CV-Analyzer/internal/config"
	"github.com/thanhdanh14/CV-Analyzer/internal/handlers"
	"github.com/thanhdanh14/CV-Analyzer/internal/repositories"
	"github.com/thanhdanh14/CV-Analyzer/internal/services"
	"github.com/thanhdanh14/CV-Analyzer/internal/views"
)

func main() {
	// Load configuration
	cfg := config.Load()
	config.InitLogger(os.Stderr, cfg.IsDevelopment())
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize repositories
	sessionRepo := repositories.NewSessionRepository()
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	backend := services.NewBackendClient(cfg.Backend.URL, cfg.Backend.Timeout)
	sessionService := services.NewSessionService(sessionRepo, cfg.UI.DefaultModel)
	analysisService := services.NewAnalysisService(
		sessionRepo,
		backend,
		services.NewDocumentInspector(),
		cfg.Upload.MaxBatchFiles,
	)
	uploadService := services.NewUploadService(cfg.Upload.MaxFileSize, cfg.Upload.MaxBatchFiles)
	log.Printf("✅ Services initialized successfully (backend: %s)\n", cfg.Backend.URL)

	// Start session janitor
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	janitor := services.NewJanitor(sessionRepo, cfg.Session.TTL, cfg.Session.SweepInterval)
	janitor.Start(ctx)

	// Initialize views
	engine, err := views.Engine()
	if err != nil {
		log.Fatalf("❌ Failed to initialize views: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CV Analyzer",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Backend.Timeout + 30*time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize)*cfg.Upload.MaxBatchFiles + 1<<20,
		ErrorHandler: handlers.ErrorHandler,
		Views:        engine,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	// Routes
	handlers.RegisterRoutes(app, handlers.Handlers{
		Pages:    handlers.NewPageHandler(sessionService, analysisService),
		Analyze:  handlers.NewAnalyzeHandler(analysisService, uploadService),
		Settings: handlers.NewSettingsHandler(sessionService),
		Session:  handlers.SessionMiddleware(sessionService, cfg.UI.DefaultLanguage, cfg.Session.TTL),
	})
	log.Println("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("🛑 Shutting down server...")
		janitor.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 Open http://localhost%s in your browser\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
