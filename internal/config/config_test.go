package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"POSTGRES_DSN", "REDIS_ADDR", "APP_ENV", "LOG_LEVEL", "APP_NAME", "APP_VERSION",
		"DEFAULT_START_DATE", "DEFAULT_END_DATE", "DATA_SOURCE", "DEFAULT_DATA_SOURCE",
		"ALLOW_SOURCE_SWITCHING", "ENABLE_CORS", "API_CACHE_DURATION",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeConfig(t, "app:\n  name: EpiDash\n"))
	require.NoError(t, err)

	assert.Equal(t, "EpiDash", cfg.App.Name)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "mock", cfg.DataSource.Default)
	assert.True(t, cfg.DataSource.AllowSwitching)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 1000, cfg.Mock.RecordCount)
	assert.Equal(t, "2023-01-01", cfg.Dashboard.DefaultStartDate)
	assert.Equal(t, "2023-12-31", cfg.Dashboard.DefaultEndDate)
	assert.Equal(t, 10, cfg.Dashboard.PageSize)
	assert.False(t, cfg.Postgres.Enabled())
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
app:
  name: "epidash-test"
  env: "production"
  log_level: "debug"
http:
  addr: ":9090"
postgres:
  dsn: "postgres://localhost/epidash?sslmode=disable"
data_source:
  default: "both"
  allow_switching: false
mock:
  record_count: 50
  seed: 42
  refresh_interval: "15m"
cache:
  ttl: "10m"
dashboard:
  default_period: "monthly"
  page_size: 25
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "epidash-test", cfg.App.Name)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.True(t, cfg.Postgres.Enabled())
	assert.Equal(t, "both", cfg.DataSource.Default)
	assert.False(t, cfg.DataSource.AllowSwitching)
	assert.Equal(t, 50, cfg.Mock.RecordCount)
	assert.Equal(t, uint64(42), cfg.Mock.Seed)
	assert.Equal(t, 15*time.Minute, cfg.Mock.RefreshInterval)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "monthly", cfg.Dashboard.DefaultPeriod)
	assert.Equal(t, 25, cfg.Dashboard.PageSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRES_DSN", "postgres://env/epidash")
	t.Setenv("DATA_SOURCE", "mock")
	t.Setenv("DEFAULT_DATA_SOURCE", "database")
	t.Setenv("ALLOW_SOURCE_SWITCHING", "false")
	t.Setenv("API_CACHE_DURATION", "120")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("DEFAULT_START_DATE", "2024-01-01")
	t.Setenv("DEFAULT_END_DATE", "2024-06-30")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "postgres://env/epidash", cfg.Postgres.DSN)
	assert.Equal(t, "database", cfg.DataSource.Default)
	assert.False(t, cfg.DataSource.AllowSwitching)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "2024-01-01", cfg.Dashboard.DefaultStartDate)
	assert.Equal(t, "2024-06-30", cfg.Dashboard.DefaultEndDate)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

func TestLoad_BadEnvValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_CACHE_DURATION", "an hour")
	_, err := Load(writeConfig(t, ""))
	assert.ErrorContains(t, err, "API_CACHE_DURATION")

	clearEnv(t)
	t.Setenv("ALLOW_SOURCE_SWITCHING", "maybe")
	_, err = Load(writeConfig(t, ""))
	assert.ErrorContains(t, err, "ALLOW_SOURCE_SWITCHING")
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Cache:      CacheConfig{TTL: time.Hour},
			DataSource: DataSourceConfig{Default: "mock"},
			Mock:       MockConfig{RecordCount: 10, StartDate: "2023-01-01", EndDate: "2023-12-31"},
			Dashboard: DashboardConfig{
				DefaultStartDate: "2023-01-01",
				DefaultEndDate:   "2023-12-31",
				DefaultPeriod:    "weekly",
				PageSize:         10,
			},
		}
	}

	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, validateConfig(valid()))
	})

	t.Run("database without dsn", func(t *testing.T) {
		cfg := valid()
		cfg.DataSource.Default = "database"
		assert.ErrorContains(t, validateConfig(cfg), "postgres.dsn")
	})

	t.Run("unknown source", func(t *testing.T) {
		cfg := valid()
		cfg.DataSource.Default = "csv"
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("malformed default date", func(t *testing.T) {
		cfg := valid()
		cfg.Dashboard.DefaultStartDate = "2023/01/01"
		assert.ErrorContains(t, validateConfig(cfg), "dashboard default range")
	})

	t.Run("non-positive page size", func(t *testing.T) {
		cfg := valid()
		cfg.Dashboard.PageSize = 0
		assert.ErrorContains(t, validateConfig(cfg), "page_size")
	})

	t.Run("non-positive record count", func(t *testing.T) {
		cfg := valid()
		cfg.Mock.RecordCount = -1
		assert.ErrorContains(t, validateConfig(cfg), "record_count")
	})

	t.Run("redis without addr", func(t *testing.T) {
		cfg := valid()
		cfg.Redis.Enabled = true
		assert.ErrorContains(t, validateConfig(cfg), "redis.addr")
	})
}
