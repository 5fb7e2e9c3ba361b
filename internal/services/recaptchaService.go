package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"portfolio/internal/metrics"
)

const recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// RecaptchaConfig controls whether login attempts must pass a reCAPTCHA
// check. Enablement is an explicit flag, never inferred from the presence
// of the secret key.
type RecaptchaConfig struct {
	Enabled   bool
	SecretKey string
}

func NewRecaptchaConfigFromEnv() RecaptchaConfig {
	return RecaptchaConfig{
		Enabled:   os.Getenv("RECAPTCHA_ENABLED") == "true",
		SecretKey: os.Getenv("RECAPTCHA_SECRET_KEY"),
	}
}

// RecaptchaVerifier checks a client-supplied challenge token against the
// verification service. The bool is the service's verdict; a non-nil error
// means the verdict could not be obtained at all.
type RecaptchaVerifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

type recaptchaService struct {
	secretKey string
	verifyURL string
	client    *http.Client
}

func NewRecaptchaService(secretKey string) RecaptchaVerifier {
	return &recaptchaService{
		secretKey: secretKey,
		verifyURL: recaptchaVerifyURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type recaptchaResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

func (s *recaptchaService) Verify(ctx context.Context, token string) (bool, error) {
	form := url.Values{}
	form.Set("secret", s.secretKey)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		metrics.RecaptchaVerificationsTotal.WithLabelValues("error").Inc()
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.RecaptchaVerificationsTotal.WithLabelValues("error").Inc()
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecaptchaVerificationsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("recaptcha service returned %s", resp.Status)
	}

	var out recaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		metrics.RecaptchaVerificationsTotal.WithLabelValues("error").Inc()
		return false, err
	}

	if out.Success {
		metrics.RecaptchaVerificationsTotal.WithLabelValues("success").Inc()
	} else {
		metrics.RecaptchaVerificationsTotal.WithLabelValues("failed").Inc()
	}
	return out.Success, nil
}
