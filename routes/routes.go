package routes

import (
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/cedarlux/cedar_lux_site/backend/auth"
	"github.com/cedarlux/cedar_lux_site/backend/consultant"
	"github.com/cedarlux/cedar_lux_site/backend/controllers"
	"github.com/cedarlux/cedar_lux_site/backend/middleware"
	"github.com/cedarlux/cedar_lux_site/backend/store"
)

func Routes(router *mux.Router, catalog *store.Catalog, settings *store.Settings, gate *auth.Gate, advisor *consultant.Client, redisClient *redis.Client) {
	// Auth routes
	router.HandleFunc("/login", controllers.Login(gate)).Methods("POST")

	// Public site routes
	router.HandleFunc("/properties", controllers.GetProperties(catalog, redisClient)).Methods("GET")
	router.HandleFunc("/properties/{id}", controllers.GetProperty(catalog)).Methods("GET")
	router.HandleFunc("/settings", controllers.GetSettings(settings)).Methods("GET")
	router.HandleFunc("/consultant", controllers.Consult(advisor)).Methods("POST")

	// Routes that require the admin token
	admin := router.PathPrefix("/api").Subrouter()
	admin.Use(middleware.AdminMiddleware)

	admin.HandleFunc("/logout", controllers.Logout(gate)).Methods("POST")

	// Property routes
	admin.HandleFunc("/properties", controllers.CreateProperty(catalog, redisClient)).Methods("POST")
	admin.HandleFunc("/properties/{id}", controllers.UpdateProperty(catalog, redisClient)).Methods("PUT")
	admin.HandleFunc("/properties/{id}", controllers.DeleteProperty(catalog, redisClient)).Methods("DELETE")

	// Settings routes
	admin.HandleFunc("/settings", controllers.ReplaceSettings(settings)).Methods("PUT")
	admin.HandleFunc("/settings/activities", controllers.AddActivity(settings)).Methods("POST")
	admin.HandleFunc("/settings/activities/{id}", controllers.UpdateActivity(settings)).Methods("PUT")
	admin.HandleFunc("/settings/activities/{id}", controllers.RemoveActivity(settings)).Methods("DELETE")
	admin.HandleFunc("/settings/spots", controllers.AddLocalSpot(settings)).Methods("POST")
	admin.HandleFunc("/settings/spots/{id}", controllers.UpdateLocalSpot(settings)).Methods("PUT")
	admin.HandleFunc("/settings/spots/{id}", controllers.RemoveLocalSpot(settings)).Methods("DELETE")
}
