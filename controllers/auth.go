package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/cedarlux/cedar_lux_site/backend/auth"
	"github.com/cedarlux/cedar_lux_site/backend/utils"
)

type loginRequest struct {
	Password string `json:"password"`
}

// Login submits a credential to the admin gate. A match yields a short-lived
// admin token; a mismatch yields the access-denied signal the frontend
// shows transiently.
func Login(gate *auth.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials loginRequest
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Printf("Error decoding login credentials: %v", err)
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		if !gate.Submit(credentials.Password) {
			log.Printf("Admin login rejected")
			http.Error(w, "Access denied", http.StatusUnauthorized)
			return
		}

		token, err := utils.GenerateAdminJWT()
		if err != nil {
			log.Printf("Error generating admin token: %v", err)
			http.Error(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Login successful", Token: token})
	}
}

// Logout resets the gate. Unconditional.
func Logout(gate *auth.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gate.Logout()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Logged out"})
	}
}
