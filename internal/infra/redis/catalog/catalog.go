package infra_redis_catalog

import (
	"time"

	"github.com/go-redis/redis"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cineverse_catalog_cache_lookups_total",
		Help: "Catalog cache lookups by result.",
	}, []string{"result"})
)

type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Set(key string, value string, ttl time.Duration) error {
	return d.client.Set(d.getFullKey(key), value, ttl).Err()
}

// Get returns "" on a miss.
func (d *Driver) Get(key string) (string, error) {
	val, err := d.client.Get(d.getFullKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			cacheLookups.WithLabelValues("miss").Inc()
			return "", nil
		}
		cacheLookups.WithLabelValues("error").Inc()
		return "", err
	}

	cacheLookups.WithLabelValues("hit").Inc()
	return val, nil
}

func (d *Driver) getFullKey(key string) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
