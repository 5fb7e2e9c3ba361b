package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"

	"portfolio/internal/database"
	"portfolio/internal/middlewares"
	"portfolio/internal/repositories"
	"portfolio/internal/services"
)

type Server struct {
	port          int
	httpServer    *http.Server
	db            database.Service
	authService   services.AuthService
	reviewService services.ReviewService
}

func NewServer() *Server {
	portStr := os.Getenv("PORT")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Warn().Str("port", portStr).Msg("Invalid or missing PORT environment variable, using default 5000")
		port = 5000
	}

	db := database.New()

	adminRepo := repositories.NewAdminRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	recaptchaCfg := services.NewRecaptchaConfigFromEnv()
	recaptcha := services.NewRecaptchaService(recaptchaCfg.SecretKey)

	s := &Server{
		port:          port,
		db:            db,
		authService:   services.NewAuthService(adminRepo, recaptcha, recaptchaCfg),
		reviewService: services.NewReviewService(reviewRepo),
	}

	go middlewares.CleanupVisitors()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	log.Info().Int("port", s.port).Msg("Starting server")
	return s.httpServer.ListenAndServe()
}

func (s *Server) GracefulShutdown(done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown with error")
	}

	if err := s.db.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Error closing database connection")
	}

	log.Info().Msg("Server exiting")
	done <- true
}
