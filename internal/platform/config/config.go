package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process-level configuration. All values come from the
// environment so main stays lean.
type Server struct {
	Addr string

	// Postgres control-library store; empty means the built-in YAML/in-memory
	// catalog is used instead.
	PostgresURL string

	// Optional directories for YAML-authored catalogs and templates.
	CatalogDir  string
	TemplateDir string

	Redis    RedisConfig
	CacheTTL time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	// Bounded parallelism for batch generation.
	WorkerLimit int

	// Override of the framework authority order used for clause selection,
	// highest authority first.
	AuthorityOrder []string
}

// RedisConfig holds Redis connection tuning.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	return Server{
		Addr:        getenv("UNIFY_ADDR", ":8080"),
		PostgresURL: os.Getenv("UNIFY_POSTGRES_URL"),
		CatalogDir:  os.Getenv("UNIFY_CATALOG_DIR"),
		TemplateDir: os.Getenv("UNIFY_TEMPLATE_DIR"),
		Redis: RedisConfig{
			URL:          os.Getenv("UNIFY_REDIS_URL"),
			PoolSize:     getenvInt("UNIFY_REDIS_POOL_SIZE", 10),
			MinIdleConns: getenvInt("UNIFY_REDIS_MIN_IDLE", 2),
			DialTimeout:  getenvDuration("UNIFY_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getenvDuration("UNIFY_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getenvDuration("UNIFY_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		CacheTTL:       getenvDuration("UNIFY_CACHE_TTL", time.Hour),
		KafkaBrokers:   getenvList("UNIFY_KAFKA_BROKERS"),
		KafkaTopic:     getenv("UNIFY_KAFKA_TOPIC", "unify.audit"),
		WorkerLimit:    getenvInt("UNIFY_WORKER_LIMIT", 4),
		AuthorityOrder: getenvList("UNIFY_AUTHORITY_ORDER"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getenvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var list []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
