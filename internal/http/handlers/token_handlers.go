package handlers

import (
	"net/http"
	"strings"
)

// RegisterTokenHandler godoc
// @Summary Register a device token for alert delivery
// @Tags tokens
// @Accept json
// @Produce json
// @Param token body TokenRequest true "Device token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /register-token [post]
func RegisterTokenHandler(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := readJSON(w, r, &req); err != nil || strings.TrimSpace(req.Token) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no token"})
		return
	}

	if err := tokenRepo.Register(req.Token); err != nil {
		http.Error(w, "could not register token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "registered"})
}

// RemoveTokenHandler godoc
// @Summary Unregister a device token
// @Tags tokens
// @Accept json
// @Produce json
// @Param token body TokenRequest true "Device token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /register-token [delete]
func RemoveTokenHandler(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := readJSON(w, r, &req); err != nil || strings.TrimSpace(req.Token) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no token"})
		return
	}

	if err := tokenRepo.Remove(req.Token); err != nil {
		http.Error(w, "could not remove token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}
