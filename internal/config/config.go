package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host      string
	Port      string
	Mode      string
	ClientURL string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Mongo struct {
	URI    string
	DBName string
}

// Store selects the persistence driver: "postgres" or "mongo".
type Store struct {
	Driver string
}

type TMDB struct {
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	RPS      float64
	CacheTTL time.Duration
	CacheKey string
	// Consecutive failures before the circuit opens.
	Breaker uint32
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	Mongo    Mongo
	Store    Store
	TMDB     TMDB
}

const (
	logtag = "[config]"

	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

var configPath = flag.String("config", "", "path env file")

func Load() *Config {
	if !flag.Parsed() {
		flag.Parse()
	}

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Mongo:    *newMongo(),
		Store:    *newStore(),
		TMDB:     *newTMDB(),
	}

	log.Printf("%s backend config : http=%+v store=%s\n", logtag, cfg.HTTP, cfg.Store.Driver)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port:      getenv("HTTP_PORT", "5000"),
		Host:      getenv("HTTP_HOST", "0.0.0.0"),
		Mode:      getenv("HTTP_MODE", "release"),
		ClientURL: getenv("CLIENT_URL", "http://localhost:5173"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", ""),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "cineverse"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newMongo() *Mongo {
	return &Mongo{
		URI:    getenv("MONGO_URI", "mongodb://localhost:27017"),
		DBName: getenv("MONGO_DB", "cineverse"),
	}
}

func newStore() *Store {
	driver := strings.ToLower(getenv("STORE_DRIVER", StorePostgres))
	if driver != StorePostgres && driver != StoreMongo {
		log.Fatalf("%s unknown STORE_DRIVER %q", logtag, driver)
	}
	return &Store{Driver: driver}
}

func newTMDB() *TMDB {
	return &TMDB{
		APIKey:   getsecret("TMDB_API_KEY"),
		BaseURL:  getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		Timeout:  getduration("TMDB_TIMEOUT", 10*time.Second),
		RPS:      getfloat("TMDB_RPS", 20),
		CacheTTL: getduration("TMDB_CACHE_TTL", 10*time.Minute),
		CacheKey: getenv("TMDB_CACHE_KEY", "catalog"),
		Breaker:  uint32(getfloat("TMDB_BREAKER_FAILURES", 5)),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getsecret(key string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined\n", logtag, key)
		return ""
	}
	fmt.Printf("%s %s = ***\n", logtag, key)
	return val
}

func getduration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	d, err := time.ParseDuration(raw)
	if err != nil {
		fmt.Printf("%s %s malformed (%v). Using default value %s\n", logtag, key, err, defaultValue)
		return defaultValue
	}
	return d
}

func getfloat(key string, defaultValue float64) float64 {
	raw := getenv(key, strconv.FormatFloat(defaultValue, 'f', -1, 64))
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		fmt.Printf("%s %s malformed. Using default value %v\n", logtag, key, defaultValue)
		return defaultValue
	}
	return f
}
