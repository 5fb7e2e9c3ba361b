package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Admin Activity Metrics
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_login_attempts_total",
		Help: "Total number of admin login attempts by outcome.",
	}, []string{"outcome"})
	RecaptchaVerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_recaptcha_verifications_total",
		Help: "Total number of reCAPTCHA verification calls by verdict.",
	}, []string{"verdict"}) // verdict: "success", "failed" or "error"

	// Portfolio Content Metrics
	ReviewsServedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_reviews_served_total",
		Help: "Total number of review listings served.",
	})
)
