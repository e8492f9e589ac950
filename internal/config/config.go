package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"marketplace-admin/internal/adminerrors"
)

// Store backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type MongoConfig struct {
	URL      string
	Database string
}

type ResolverConfig struct {
	Concurrency int
	Retries     uint64
	Backoff     time.Duration
}

type Config struct {
	ServerAddr      string
	Store           string
	Redis           RedisConfig
	Mongo           MongoConfig
	Resolver        ResolverConfig
	DefaultPageSize int
	MaxPageSize     int
	Locale          string
	LogLevel        string
	SeedDemo        bool
}

// Load parses args as flags. ADMIN_* environment variables (ADMIN_REDIS_ADDR for
// --redis-addr and so on) replace the defaults of flags that were not passed.
func Load(args []string) (Config, error) {
	flags := pflag.NewFlagSet("marketplace-admin", pflag.ContinueOnError)

	// server config
	flags.String("server-addr", "0.0.0.0:8080", "listen address")
	flags.String("log-level", "info", "logrus level name")

	// store config
	flags.String("store", BackendMemory, "document store backend: memory, redis or mongo")
	flags.String("redis-addr", "localhost:6379", "")
	flags.String("redis-password", "", "")
	flags.Int("redis-db", 0, "")
	flags.String("redis-prefix", "admin:", "key prefix for every document and index key")
	flags.String("mongo-url", "mongodb://localhost:27017", "")
	flags.String("mongo-database", "marketplace", "")

	// aggregation config
	flags.Int("resolver-concurrency", 16, "max concurrent point reads per resolution")
	flags.Uint64("resolver-retries", 2, "retries for a transient point-read failure")
	flags.Duration("resolver-backoff", 50*time.Millisecond, "initial retry interval")

	// listing config
	flags.Int("default-page-size", 20, "")
	flags.Int("max-page-size", 100, "")
	flags.String("locale", "en", "BCP 47 tag used to collate string sorts")

	flags.Bool("seed-demo", false, "fill an empty memory store with demo records")

	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w - %v", adminerrors.ErrInvalidInput, err)
	}

	// bind pflag to viper
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("config: bind flags: %w", err)
	}
	v.AutomaticEnv()
	v.SetEnvPrefix("ADMIN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	cfg := Config{
		ServerAddr: v.GetString("server-addr"),
		Store:      strings.ToLower(v.GetString("store")),
		Redis: RedisConfig{
			Addr:     v.GetString("redis-addr"),
			Password: v.GetString("redis-password"),
			DB:       v.GetInt("redis-db"),
			Prefix:   v.GetString("redis-prefix"),
		},
		Mongo: MongoConfig{
			URL:      v.GetString("mongo-url"),
			Database: v.GetString("mongo-database"),
		},
		Resolver: ResolverConfig{
			Concurrency: v.GetInt("resolver-concurrency"),
			Retries:     v.GetUint64("resolver-retries"),
			Backoff:     v.GetDuration("resolver-backoff"),
		},
		DefaultPageSize: v.GetInt("default-page-size"),
		MaxPageSize:     v.GetInt("max-page-size"),
		Locale:          v.GetString("locale"),
		LogLevel:        v.GetString("log-level"),
		SeedDemo:        v.GetBool("seed-demo"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var problems []string
	if c.ServerAddr == "" {
		problems = append(problems, "server-addr is empty")
	}
	switch c.Store {
	case BackendMemory:
	case BackendRedis:
		if c.Redis.Addr == "" {
			problems = append(problems, "redis-addr is required for the redis store")
		}
	case BackendMongo:
		if c.Mongo.URL == "" || c.Mongo.Database == "" {
			problems = append(problems, "mongo-url and mongo-database are required for the mongo store")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown store %q", c.Store))
	}
	if c.Resolver.Concurrency <= 0 {
		problems = append(problems, "resolver-concurrency must be positive")
	}
	if c.DefaultPageSize <= 0 || c.MaxPageSize < c.DefaultPageSize {
		problems = append(problems, "page sizes must satisfy 0 < default-page-size <= max-page-size")
	}
	if c.SeedDemo && c.Store != BackendMemory {
		problems = append(problems, "seed-demo only works with the memory store")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: %w - %s", adminerrors.ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}
