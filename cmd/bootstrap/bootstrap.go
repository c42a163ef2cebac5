package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"clinic-booking/config"
	deliveryHttp "clinic-booking/internal/delivery/http"
	"clinic-booking/internal/delivery/http/handler"
	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/internal/delivery/http/view"
	"clinic-booking/internal/infrastructure/cache"
	"clinic-booking/internal/infrastructure/database"
	"clinic-booking/internal/infrastructure/notification"
	"clinic-booking/internal/repository"
	"clinic-booking/internal/service"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/flash"
	"clinic-booking/pkg/jwt"
	"clinic-booking/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Log         *logrus.Logger
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{Log: logrus.StandardLogger()}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(app.Log, cfg.App.LogLevel)
	app.Log.Info("Configuration loaded successfully")

	// Apply migrations before gorm opens its pool
	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(cfg.DB); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	app.Log.Info("Redis connected successfully")

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient, app.Log)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(log *logrus.Logger, level string) {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
}

// newNotificationSenders falls back to logging when a provider is not configured
func newNotificationSenders(cfg *config.Config, log *logrus.Logger) (service.EmailSender, service.SMSSender) {
	var emailSender service.EmailSender = notification.NewLogSender(log)
	if cfg.SMTP.Host != "" {
		emailSender = notification.NewSMTPMailer(cfg.SMTP)
	}

	var smsSender service.SMSSender = notification.NewLogSender(log)
	if cfg.Twilio.AccountSID != "" && cfg.Twilio.AuthToken != "" {
		smsSender = notification.NewTwilioSMSSender(cfg.Twilio)
	}

	return emailSender, smsSender
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) (*http.Server, error) {
	// Initialize session signer and flash store
	sessionSigner := jwt.NewSessionSigner(cfg.Session)
	flashStore := flash.NewRedisStore(redisClient, cfg.Session.TTL)
	secureCookie := strings.HasPrefix(cfg.App.BaseURL, "https://")
	flashManager := flash.NewManager(flashStore, sessionSigner, cfg.Session.CookieName, secureCookie)

	// Initialize views
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	clinicRepo := repository.NewClinicRepository()
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	availabilityRepo := repository.NewAvailabilityRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	emailSender, smsSender := newNotificationSenders(cfg, log)
	auditService := service.NewAuditService(log, auditLogRepo)
	notificationService := service.NewNotificationService(log, emailSender, smsSender, cfg.App.BaseURL)

	// Initialize usecases
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, userRepo, availabilityRepo, appointmentRepo)
	bookingUsecase := usecase.NewPublicBookingUsecase(db, log, clinicRepo, userRepo, patientRepo, appointmentRepo, auditService, notificationService)
	cancellationUsecase := usecase.NewCancellationUsecase(db, log, appointmentRepo, auditService, notificationService)

	// Initialize handlers
	pages := handler.NewPages(renderer, flashManager, log)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator, pages, log)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase)
	cancellationHandler := handler.NewCancellationHandler(cancellationUsecase, pages, log)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(bookingHandler, availabilityHandler, cancellationHandler, pages, corsMiddleware, loggingMiddleware, recoveryMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
