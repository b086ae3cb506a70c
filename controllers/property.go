package controllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/cedarlux/cedar_lux_site/backend/models"
	"github.com/cedarlux/cedar_lux_site/backend/store"
)

type Response struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// GetProperties serves the public, filterable listing view. Responses are
// cached in redis per filter combination when a client is available.
func GetProperties(catalog *store.Catalog, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		cacheKey := generateCacheKey(query)

		if redisClient != nil {
			cachedData, err := redisClient.Get(r.Context(), cacheKey).Result()
			if err == nil {
				log.Printf("Cache hit for key: %s", cacheKey)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(cachedData))
				return
			}
			if err != redis.Nil {
				log.Printf("Redis GET error for key %s: %v", cacheKey, err)
			}
			log.Printf("Cache miss for key: %s", cacheKey)
		}

		visible := store.Visible(catalog.All(), query.Get("neighborhood"), query.Get("status"))

		resultBytes, err := json.Marshal(visible)
		if err != nil {
			log.Printf("Failed to serialize properties: %v", err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}

		if redisClient != nil {
			if err := redisClient.Set(r.Context(), cacheKey, resultBytes, 10*time.Minute).Err(); err != nil {
				log.Printf("Failed to cache response for key %s: %v", cacheKey, err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(resultBytes)
	}
}

// GetProperty serves a single listing by id.
func GetProperty(catalog *store.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		property, err := catalog.Get(id)
		if err != nil {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(property)
	}
}

// CreateProperty adds a listing. A caller-supplied id is accepted as-is; a
// missing id gets a generated one.
func CreateProperty(catalog *store.Catalog, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var property models.Property
		if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
			log.Printf("Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if msg, ok := validateProperty(property); !ok {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		stored, err := catalog.Add(property)
		if err != nil {
			if errors.Is(err, store.ErrDuplicateID) {
				http.Error(w, "Property ID already exists", http.StatusConflict)
				return
			}
			log.Printf("Insert failed: %v", err)
			http.Error(w, "Failed to create property", http.StatusInternalServerError)
			return
		}

		go func() {
			invalidatePropertyCache(redisClient)
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(stored)
	}
}

// UpdateProperty replaces every field of an existing listing; its position
// in the catalog is unchanged.
func UpdateProperty(catalog *store.Catalog, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID := mux.Vars(r)["id"]

		var property models.Property
		if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
			log.Printf("Invalid update data: %v", err)
			http.Error(w, "Invalid update data", http.StatusBadRequest)
			return
		}
		property.ID = propertyID

		if msg, ok := validateProperty(property); !ok {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		if err := catalog.Update(property); err != nil {
			log.Printf("No property found with ID %s", propertyID)
			http.Error(w, "No property found", http.StatusNotFound)
			return
		}

		go func() {
			invalidatePropertyCache(redisClient)
		}()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Property updated successfully"})
	}
}

// DeleteProperty removes a listing. Deleting an id that is already gone
// succeeds; the operation is idempotent.
func DeleteProperty(catalog *store.Catalog, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID := mux.Vars(r)["id"]

		catalog.Delete(propertyID)

		go func() {
			invalidatePropertyCache(redisClient)
		}()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Property deleted successfully"})
	}
}

// validateProperty checks form-boundary constraints. The catalog itself
// trusts well-formed input.
func validateProperty(p models.Property) (string, bool) {
	if p.Title == "" {
		return "Title is required", false
	}
	if p.Price < 0 || p.Beds < 0 || p.Baths < 0 || p.Sqft < 0 {
		return "Numeric fields must be non-negative", false
	}
	if !p.Status.Valid() {
		return "Invalid property status", false
	}
	return "", true
}

func generateCacheKey(queryParams url.Values) string {
	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		values := queryParams[key]
		sort.Strings(values)
		for _, val := range values {
			sb.WriteString(key)
			sb.WriteString("=")
			sb.WriteString(val)
			sb.WriteString("&")
		}
	}
	rawKey := strings.TrimSuffix(sb.String(), "&")

	sum := sha256.Sum256([]byte(rawKey))
	return "property:" + hex.EncodeToString(sum[:])
}

func invalidatePropertyCache(redisClient *redis.Client) {
	if redisClient == nil {
		return
	}

	ctx := context.Background()
	const scanPattern = "property:*"
	const scanCount = 100

	var keysToDelete []string
	var cursor uint64
	var err error

	for {
		var currentKeys []string
		currentKeys, cursor, err = redisClient.Scan(ctx, cursor, scanPattern, scanCount).Result()
		if err != nil {
			log.Printf("Error during Redis SCAN for pattern '%s': %v", scanPattern, err)
			return
		}
		keysToDelete = append(keysToDelete, currentKeys...)
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return
	}

	pipe := redisClient.Pipeline()
	for _, key := range keysToDelete {
		pipe.Del(ctx, key)
	}
	if _, execErr := pipe.Exec(ctx); execErr != nil {
		log.Printf("Error deleting %d property cache keys: %v", len(keysToDelete), execErr)
	} else {
		log.Printf("Property cache invalidated, deleted %d keys", len(keysToDelete))
	}
}
