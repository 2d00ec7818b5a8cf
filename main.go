package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/crazydog22/sistema-gerenciamento-voos/config"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/handler"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/mailer"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/middleware"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/notifier"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/repository"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/service"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/weather"
	"github.com/crazydog22/sistema-gerenciamento-voos/pkg/database"
	"github.com/crazydog22/sistema-gerenciamento-voos/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ: reservations publish notifications, the mailer consumes them
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	mailConsumer := mailer.NewConsumer(mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailFrom,
	}))
	mailConsumer.Start(msgs)

	// Weather cache
	var weatherCache weather.Cache
	if cfg.RedisEnabled {
		redisCache, err := weather.NewRedisCache(weather.RedisConfig{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
			TTL:      cfg.WeatherTTL,
		})
		if err != nil {
			log.Fatalf("failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		weatherCache = redisCache
		log.Printf("weather cache enabled (redis %s, TTL %v)", cfg.RedisAddr(), cfg.WeatherTTL)
	} else {
		weatherCache = weather.NewNoOpCache()
		log.Println("weather cache disabled")
	}
	weatherClient := weather.NewClient(weather.Config{
		APIKey:  cfg.WeatherAPIKey,
		BaseURL: cfg.WeatherBaseURL,
	}, weatherCache)

	// Repositories
	flightRepo := repository.NewFlightRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	// Expired refresh tokens are dead weight, sweep them hourly
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if n, err := tokenRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("[Tokens] cleanup failed: %v", err)
			} else if n > 0 {
				log.Printf("[Tokens] removed %d expired tokens", n)
			}
		}
	}()

	// Services
	ledger := service.NewFlightLedger(flightRepo)
	flightSvc := service.NewFlightService(flightRepo, weatherClient)
	reservationSvc := service.NewReservationService(ledger, reservationRepo, flightRepo, notifier.NewAMQPNotifier(publisher))
	userSvc := service.NewUserService(userRepo, tokenRepo, cfg.JWTSecret, cfg.AccessTokenDuration, cfg.RefreshTokenDuration)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())
	e.Use(echoMw.RateLimiter(echoMw.NewRateLimiterMemoryStoreWithConfig(echoMw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RateLimit),
		Burst:     int(cfg.RateLimit) * 2,
		ExpiresIn: 3 * time.Minute,
	})))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "environment": cfg.Env})
	})

	handler.NewFlightHandler(flightSvc).RegisterRoutes(e)
	handler.NewReservationHandler(reservationSvc).RegisterRoutes(e)
	handler.NewUserHandler(userSvc).RegisterRoutes(e)

	// Graceful shutdown
	go func() {
		log.Printf("Flight service starting on :%s (env: %s)", cfg.ServerPort, cfg.Env)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
}
