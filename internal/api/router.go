package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/aoicon/registration-auth/docs"
	"github.com/aoicon/registration-auth/internal/api/handler"
	"github.com/aoicon/registration-auth/internal/api/middleware"
	"github.com/aoicon/registration-auth/internal/core/service"
	"github.com/aoicon/registration-auth/internal/infrastructure/config"
	mongostore "github.com/aoicon/registration-auth/internal/infrastructure/db/mongo"
	"github.com/aoicon/registration-auth/internal/infrastructure/notification"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("regauth"))

	// --- Dependencies ---
	emailSender, err := notification.NewSMTPEmailSender(notification.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	if err != nil {
		return nil, err
	}
	smsSender := notification.NewHTTPSMSSender(notification.SMSGatewayConfig{
		BaseURL:  cfg.SMS.GatewayURL,
		APIKey:   cfg.SMS.APIKey,
		SenderID: cfg.SMS.SenderID,
	})

	userRepo := mongostore.NewUserRepository(db)
	sessionService := service.NewJWTSessionService(cfg.JWTSecret, cfg.SessionTTL)
	otpService := service.NewOTPService(userRepo, emailSender, smsSender, sessionService, log)

	otpHandler := handler.NewOTPHandler(otpService)
	sessionHandler := handler.NewSessionHandler()
	sessionRequired := middleware.Session(sessionService)

	// --- Auth routes ---
	e.POST("/api/auth/send-otp", otpHandler.SendOTP)
	e.POST("/api/auth/verify-otp", otpHandler.VerifyOTP)
	e.GET("/api/auth/session", sessionHandler.Session, sessionRequired)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
