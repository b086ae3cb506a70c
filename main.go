package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cedarlux/cedar_lux_site/backend/auth"
	"github.com/cedarlux/cedar_lux_site/backend/config"
	"github.com/cedarlux/cedar_lux_site/backend/consultant"
	"github.com/cedarlux/cedar_lux_site/backend/models"
	"github.com/cedarlux/cedar_lux_site/backend/routes"
	"github.com/cedarlux/cedar_lux_site/backend/store"
)

func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
}

func setupLogger() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}

// openStore picks the durable backend: Mongo when MONGOURI is set, otherwise
// JSON files under the data directory. The returned cleanup is a no-op for
// the file backend.
func openStore() (store.DurableStore, func(), error) {
	if os.Getenv("MONGOURI") != "" {
		client, err := config.ConnectDB()
		if err != nil {
			return nil, nil, err
		}
		return store.NewMongoStore(config.BlobCollection(client)), func() { config.CloseDBConnection(client) }, nil
	}

	fileStore, err := store.NewFileStore(config.DataDir())
	if err != nil {
		return nil, nil, err
	}
	return fileStore, func() {}, nil
}

func main() {
	setupLogger()
	loadEnv()

	db, closeStore, err := openStore()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open durable store")
	}
	defer closeStore()

	catalog := store.NewCatalog(db, models.SeedProperties())
	settings := store.NewSettings(db, models.DefaultSettings())
	gate := auth.NewGate(config.AdminPassword())
	advisor := consultant.New(os.Getenv("GEMINI_API_KEY"))
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		advisor.Model = model
	}

	redisClient := config.InitRedis()

	router := mux.NewRouter()
	routes.Routes(router, catalog, settings, gate, advisor, redisClient)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	port := config.Getenv("PORT", "8080")

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().Msgf("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Error starting server")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Error during server shutdown")
	}
	log.Info().Msg("Server gracefully stopped")
}
