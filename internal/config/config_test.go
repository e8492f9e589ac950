package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketplace-admin/internal/adminerrors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8080", cfg.ServerAddr)
	require.Equal(t, BackendMemory, cfg.Store)
	require.Equal(t, 16, cfg.Resolver.Concurrency)
	require.Equal(t, uint64(2), cfg.Resolver.Retries)
	require.Equal(t, 50*time.Millisecond, cfg.Resolver.Backoff)
	require.Equal(t, 20, cfg.DefaultPageSize)
	require.Equal(t, 100, cfg.MaxPageSize)
	require.Equal(t, "en", cfg.Locale)
	require.False(t, cfg.SeedDemo)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load([]string{
		"--store", "REDIS",
		"--redis-addr", "cache:6380",
		"--redis-db", "3",
		"--resolver-backoff", "250ms",
		"--locale", "de",
	})
	require.NoError(t, err)

	require.Equal(t, BackendRedis, cfg.Store)
	require.Equal(t, "cache:6380", cfg.Redis.Addr)
	require.Equal(t, 3, cfg.Redis.DB)
	require.Equal(t, 250*time.Millisecond, cfg.Resolver.Backoff)
	require.Equal(t, "de", cfg.Locale)
}

// t.Setenv forbids t.Parallel
func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("ADMIN_MONGO_DATABASE", "reports")
	t.Setenv("ADMIN_MAX_PAGE_SIZE", "50")
	t.Setenv("ADMIN_LOCALE", "fr")

	// an explicit flag still wins over the environment
	cfg, err := Load([]string{"--store", "mongo", "--locale", "sv"})
	require.NoError(t, err)

	require.Equal(t, "reports", cfg.Mongo.Database)
	require.Equal(t, 50, cfg.MaxPageSize)
	require.Equal(t, "sv", cfg.Locale)
}

func TestLoad_UnknownFlag(t *testing.T) {
	_, err := Load([]string{"--no-such-flag"})
	require.ErrorIs(t, err, adminerrors.ErrInvalidInput)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			ServerAddr:      ":8080",
			Store:           BackendMemory,
			Resolver:        ResolverConfig{Concurrency: 4},
			DefaultPageSize: 10,
			MaxPageSize:     10,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "empty_addr", mutate: func(c *Config) { c.ServerAddr = "" }, wantErr: "server-addr"},
		{name: "unknown_store", mutate: func(c *Config) { c.Store = "sqlite" }, wantErr: `unknown store "sqlite"`},
		{name: "redis_without_addr", mutate: func(c *Config) { c.Store = BackendRedis }, wantErr: "redis-addr"},
		{name: "mongo_without_database", mutate: func(c *Config) {
			c.Store = BackendMongo
			c.Mongo.URL = "mongodb://db"
		}, wantErr: "mongo-database"},
		{name: "zero_concurrency", mutate: func(c *Config) { c.Resolver.Concurrency = 0 }, wantErr: "resolver-concurrency"},
		{name: "default_above_max", mutate: func(c *Config) { c.DefaultPageSize = 11 }, wantErr: "page sizes"},
		{name: "seed_outside_memory", mutate: func(c *Config) {
			c.Store = BackendRedis
			c.Redis.Addr = "r:6379"
			c.SeedDemo = true
		}, wantErr: "seed-demo"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, adminerrors.ErrInvalidInput)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
