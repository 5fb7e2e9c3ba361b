package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolio/internal/handlers"
	"portfolio/internal/middlewares"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	r.Use(middlewares.CorsMiddleware)
	r.Use(middlewares.RateLimit)
	r.Use(middlewares.NewPrometheusMiddleware().Instrument)

	ch := handlers.NewCommonHandler(s.db)
	r.HandleFunc("/", ch.RootHandler).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/health", ch.HealthHandler).Methods("GET", "OPTIONS")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	s.registerAuthRoutes(r)
	s.registerReviewRoutes(r)

	return r
}

func (s *Server) registerAuthRoutes(r *mux.Router) {
	ah := handlers.NewAuthHandler(s.authService)

	r.HandleFunc("/api/admin/login", ah.Login).Methods("POST", "OPTIONS")
	r.Handle("/api/admin/me", middlewares.AuthMiddleware(http.HandlerFunc(ah.Me))).Methods("GET", "OPTIONS")
}

func (s *Server) registerReviewRoutes(r *mux.Router) {
	rh := handlers.NewReviewHandler(s.reviewService)

	r.HandleFunc("/api/reviews", rh.GetReviews).Methods("GET", "OPTIONS")
}
