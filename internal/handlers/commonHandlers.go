package handlers

import (
	"net/http"
	"time"

	"portfolio/internal/database"
	"portfolio/internal/utils"
)

type CommonHandler struct {
	db database.Service
}

func NewCommonHandler(db database.Service) *CommonHandler {
	return &CommonHandler{db: db}
}

func (h *CommonHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Admin Login API Server is running!",
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"endpoints": map[string]string{
			"health":      "/api/health",
			"admin_login": "/api/admin/login",
			"reviews":     "/api/reviews",
		},
	})
}

func (h *CommonHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	health := h.db.Health()

	dbStatus := "connected"
	if health["message"] != "It's healthy" {
		dbStatus = "disconnected"
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":        true,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
