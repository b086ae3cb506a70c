package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/cedarlux/cedar_lux_site/backend/models"
	"github.com/cedarlux/cedar_lux_site/backend/store"
)

// GetSettings serves the site settings record. Public: the frontend renders
// every page from it.
func GetSettings(settings *store.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(settings.Get())
	}
}

// ReplaceSettings overwrites the whole record. The admin editor submits an
// entire edited copy, so there is no field merge here.
func ReplaceSettings(settings *store.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var next models.SiteSettings
		if err := json.NewDecoder(r.Body).Decode(&next); err != nil {
			log.Printf("Invalid settings payload: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		for _, a := range next.Activities {
			if !a.Icon.Valid() {
				http.Error(w, "Invalid activity icon", http.StatusBadRequest)
				return
			}
		}
		for _, s := range next.LocalSpots {
			if !s.Category.Valid() {
				http.Error(w, "Invalid spot category", http.StatusBadRequest)
				return
			}
		}

		settings.Replace(next)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Settings saved successfully"})
	}
}

// AddActivity appends an activity to the lifestyle list.
func AddActivity(settings *store.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var activity models.Activity
		if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
			log.Printf("Invalid activity payload: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if activity.Title == "" {
			http.Error(w, "Title is required", http.StatusBadRequest)
			return
		}
		if !activity.Icon.Valid() {
			http.Error(w, "Invalid activity icon", http.StatusBadRequest)
			return
		}

		stored := settings.AddActivity(activity)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(stored)
	}
}

// UpdateActivity merges a partial edit into one activity.
func UpdateActivity(settings *store.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var patch models.ActivityPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			log.Printf("Invalid activity patch: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if patch.Icon != nil && !patch.Icon.Valid() {
			http.Error(w, "Invalid activity icon", http.StatusBadRequest)
			return
		}

		if err := settings.UpdateActivity(id, patch); err != nil {
			http.Error(w, "No activity found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Activity updated successfully"})
	}
}

// RemoveActivity deletes one activity; absent ids succeed.
func RemoveActivity(settings *store.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings.RemoveActivity(mux.Vars(r)["id"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Activity removed successfully"})
	}
}

// AddLocalSpot appends a spot to the local recommendations list.
func AddLocalSpot(settings *store.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spot models.LocalSpot
		if err := json.NewDecoder(r.Body).Decode(&spot); err != nil {
			log.Printf("Invalid spot payload: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if spot.Title == "" {
			http.Error(w, "Title is required", http.StatusBadRequest)
			return
		}
		if !spot.Category.Valid() {
			http.Error(w, "Invalid spot category", http.StatusBadRequest)
			return
		}

		stored := settings.AddLocalSpot(spot)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(stored)
	}
}

// UpdateLocalSpot merges a partial edit into one spot.
func UpdateLocalSpot(settings *store.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var patch models.LocalSpotPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			log.Printf("Invalid spot patch: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if patch.Category != nil && !patch.Category.Valid() {
			http.Error(w, "Invalid spot category", http.StatusBadRequest)
			return
		}

		if err := settings.UpdateLocalSpot(id, patch); err != nil {
			http.Error(w, "No spot found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Spot updated successfully"})
	}
}

// RemoveLocalSpot deletes one spot; absent ids succeed.
func RemoveLocalSpot(settings *store.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings.RemoveLocalSpot(mux.Vars(r)["id"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Spot removed successfully"})
	}
}
