package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/internal/metrics"
	"portfolio/internal/models"
	"portfolio/internal/services"
	"portfolio/internal/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login decodes the typed credentials body and maps the pipeline outcome to
// a status code and response body. The outcome alone decides the status.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Login

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Error().Err(err).Msg("Invalid request body for Login")
		utils.SendJSONError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := h.authService.VerifyLogin(r.Context(), &creds)
	metrics.LoginAttemptsTotal.WithLabelValues(string(result.Outcome)).Inc()

	switch result.Outcome {
	case models.LoginSuccess:
		utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"ok":    true,
			"admin": result.Admin,
			"token": result.Token,
		})
	case models.LoginMissingFields:
		utils.SendJSONError(w, "Email and password required", http.StatusBadRequest)
	case models.LoginBotCheckRequired:
		utils.SendJSONError(w, "reCAPTCHA verification required", http.StatusBadRequest)
	case models.LoginBotCheckFailed:
		utils.SendJSONError(w, "reCAPTCHA verification failed", http.StatusBadRequest)
	case models.LoginInvalidCredentials:
		utils.SendJSONError(w, "Invalid email or password", http.StatusUnauthorized)
	case models.LoginAccountMisconfigured:
		utils.SendJSONError(w, "Account configuration error", http.StatusInternalServerError)
	default:
		utils.SendJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Me returns the authenticated admin's account, resolved from the JWT set
// by the auth middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	adminIDStr, ok := r.Context().Value("adminID").(string)
	if !ok {
		log.Error().Msg("Admin ID not found in context for Me")
		utils.SendJSONError(w, "Admin ID not found in context", http.StatusUnauthorized)
		return
	}

	adminID, err := primitive.ObjectIDFromHex(adminIDStr)
	if err != nil {
		log.Error().Err(err).Str("admin_id_str", adminIDStr).Msg("Invalid admin ID format in context for Me")
		utils.SendJSONError(w, "Invalid admin ID format", http.StatusUnauthorized)
		return
	}

	admin, err := h.authService.GetAdminProfile(r.Context(), adminID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "admin not found" {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":        true,
		"admin":     admin,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
