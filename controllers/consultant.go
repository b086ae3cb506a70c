package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/cedarlux/cedar_lux_site/backend/consultant"
	"github.com/cedarlux/cedar_lux_site/backend/models"
)

type consultRequest struct {
	Message string               `json:"message"`
	History []models.ChatMessage `json:"history"`
}

type consultResponse struct {
	Reply string `json:"reply"`
}

// Consult forwards a chat message to the design consultant. The reply is
// always displayable text; upstream failures surface as the client's
// fallback strings, never as an error status.
func Consult(client *consultant.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req consultRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Invalid consultation payload: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Message == "" {
			http.Error(w, "Message is required", http.StatusBadRequest)
			return
		}

		reply := client.Advise(r.Context(), req.Message, req.History)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(consultResponse{Reply: reply})
	}
}
