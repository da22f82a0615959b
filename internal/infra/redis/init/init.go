package infra_redis_init

import (
	"fmt"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/cineverse/internal/config"
)

// Connect returns a pinged client. The catalog cache is optional, so
// callers decide whether a failed ping is fatal.
func Connect(cfg config.RedisCache) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	if err := client.Ping().Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}
