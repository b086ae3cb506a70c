package config

import (
	"context"
	"os"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	Ctx         = context.Background()
)

// InitRedis returns the shared redis client used for listing-response
// caching, or nil when REDIS_ADD is unset or the server is unreachable. The
// cache is an optimization over an in-memory catalog, so the service runs
// without it.
func InitRedis() *redis.Client {
	redisOnce.Do(func() {
		addr := os.Getenv("REDIS_ADD")
		if addr == "" {
			log.Info().Msg("REDIS_ADD not set, listing cache disabled")
			return
		}

		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASS"),
			DB:       0,
		})

		if _, err := client.Ping(Ctx).Result(); err != nil {
			log.Warn().Err(err).Msg("Failed to connect to Redis, listing cache disabled")
			return
		}
		log.Info().Msg("Connected to Redis")
		redisClient = client
	})
	return redisClient
}
