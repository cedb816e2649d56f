package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"epidash-service/internal/dashboard/core/domain"
)

type Config struct {
	App        AppConfig        `mapstructure:"app"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Cache      CacheConfig      `mapstructure:"cache"`
	DataSource DataSourceConfig `mapstructure:"data_source"`
	Mock       MockConfig       `mapstructure:"mock"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Dashboard  DashboardConfig  `mapstructure:"dashboard"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Version  string `mapstructure:"version"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	EnableCORS      bool          `mapstructure:"enable_cors"`
	EnableSwagger   bool          `mapstructure:"enable_swagger"`
}

type PostgresConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// Enabled reports whether a database is configured at all.
func (p PostgresConfig) Enabled() bool { return p.DSN != "" }

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type DataSourceConfig struct {
	Default        string `mapstructure:"default"`
	AllowSwitching bool   `mapstructure:"allow_switching"`
}

type MockConfig struct {
	RecordCount     int           `mapstructure:"record_count"`
	Seed            uint64        `mapstructure:"seed"`
	StartDate       string        `mapstructure:"start_date"`
	EndDate         string        `mapstructure:"end_date"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

type SchedulerConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type DashboardConfig struct {
	DefaultStartDate string `mapstructure:"default_start_date"`
	DefaultEndDate   string `mapstructure:"default_end_date"`
	DefaultPeriod    string `mapstructure:"default_period"`
	PageSize         int    `mapstructure:"page_size"`
	TopRegions       int    `mapstructure:"top_regions"`
}

// Load reads defaults, then the optional config file, then the environment.
// A non-empty path names the config file explicitly.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/epidash/")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if err := overrideFromEnv(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "EpiDash")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", 5*time.Second)
	v.SetDefault("http.enable_cors", true)
	v.SetDefault("http.enable_swagger", true)

	v.SetDefault("postgres.dsn", "")
	v.SetDefault("postgres.max_open_conns", 20)
	v.SetDefault("postgres.max_idle_conns", 10)
	v.SetDefault("postgres.conn_max_lifetime", 30*time.Minute)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("cache.ttl", time.Hour)

	v.SetDefault("data_source.default", string(domain.DataSourceMock))
	v.SetDefault("data_source.allow_switching", true)

	v.SetDefault("mock.record_count", 1000)
	v.SetDefault("mock.seed", 0)
	v.SetDefault("mock.start_date", "2023-01-01")
	v.SetDefault("mock.end_date", "2023-12-31")
	v.SetDefault("mock.refresh_interval", time.Hour)

	v.SetDefault("scheduler.timeout", 30*time.Second)

	v.SetDefault("dashboard.default_start_date", "2023-01-01")
	v.SetDefault("dashboard.default_end_date", "2023-12-31")
	v.SetDefault("dashboard.default_period", string(domain.PeriodWeekly))
	v.SetDefault("dashboard.page_size", 10)
	v.SetDefault("dashboard.top_regions", 10)
}

// overrideFromEnv maps the flat variable names used by existing deployments.
func overrideFromEnv(v *viper.Viper) error {
	strs := map[string]string{
		"POSTGRES_DSN":       "postgres.dsn",
		"REDIS_ADDR":         "redis.addr",
		"APP_ENV":            "app.env",
		"LOG_LEVEL":          "app.log_level",
		"APP_NAME":           "app.name",
		"APP_VERSION":        "app.version",
		"DEFAULT_START_DATE": "dashboard.default_start_date",
		"DEFAULT_END_DATE":   "dashboard.default_end_date",
		"DATA_SOURCE":        "data_source.default",
	}
	for env, key := range strs {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}
	// DEFAULT_DATA_SOURCE wins over DATA_SOURCE
	if val := os.Getenv("DEFAULT_DATA_SOURCE"); val != "" {
		v.Set("data_source.default", val)
	}

	if os.Getenv("REDIS_ADDR") != "" {
		v.Set("redis.enabled", true)
	}

	bools := map[string]string{
		"ALLOW_SOURCE_SWITCHING": "data_source.allow_switching",
		"ENABLE_CORS":            "http.enable_cors",
	}
	for env, key := range bools {
		if val := os.Getenv(env); val != "" {
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("%s: %w", env, err)
			}
			v.Set(key, b)
		}
	}

	if val := os.Getenv("API_CACHE_DURATION"); val != "" {
		secs, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("API_CACHE_DURATION: %w", err)
		}
		v.Set("cache.ttl", time.Duration(secs)*time.Second)
	}

	return nil
}

func validateConfig(cfg *Config) error {
	ds, err := domain.ParseDataSource(cfg.DataSource.Default)
	if err != nil {
		return err
	}
	if ds != domain.DataSourceMock && !cfg.Postgres.Enabled() {
		return fmt.Errorf("data source %q requires postgres.dsn", ds)
	}

	if _, err := domain.ParsePeriod(cfg.Dashboard.DefaultPeriod); err != nil {
		return err
	}

	if _, err := domain.NewFilterCriteria(domain.CriteriaInput{
		StartDate: cfg.Dashboard.DefaultStartDate,
		EndDate:   cfg.Dashboard.DefaultEndDate,
		Period:    cfg.Dashboard.DefaultPeriod,
	}); err != nil {
		return fmt.Errorf("dashboard default range: %w", err)
	}
	if _, err := domain.NewFilterCriteria(domain.CriteriaInput{
		StartDate: cfg.Mock.StartDate,
		EndDate:   cfg.Mock.EndDate,
		Period:    string(domain.PeriodDaily),
	}); err != nil {
		return fmt.Errorf("mock range: %w", err)
	}

	if cfg.Dashboard.PageSize <= 0 {
		return fmt.Errorf("dashboard.page_size must be positive")
	}
	if cfg.Mock.RecordCount <= 0 {
		return fmt.Errorf("mock.record_count must be positive")
	}
	if cfg.Mock.RefreshInterval < 0 {
		return fmt.Errorf("mock.refresh_interval must not be negative")
	}
	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	if cfg.Redis.Enabled && cfg.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when redis is enabled")
	}

	return nil
}
