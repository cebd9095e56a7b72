package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"mindcare/internal/model"
)

// Config holds all configuration for the API
type Config struct {
	Server    ServerConfig        `mapstructure:"server"`
	Mongo     MongoConfig         `mapstructure:"mongo"`
	Redis     RedisConfig         `mapstructure:"redis"`
	JWT       JWTConfig           `mapstructure:"jwt"`
	CORS      CORSConfig          `mapstructure:"cors"`
	Log       LogConfig           `mapstructure:"log"`
	Cache     CacheConfig         `mapstructure:"cache"`
	Counselor CounselorConfig     `mapstructure:"counselor"`
	Demo      []model.DemoAccount `mapstructure:"demo_accounts"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type CORSConfig struct {
	AllowedOrigins string `mapstructure:"allowed_origins"`
	AllowedMethods string `mapstructure:"allowed_methods"`
	AllowedHeaders string `mapstructure:"allowed_headers"`
}

// Origins splits AllowedOrigins on commas
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

func splitList(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CacheConfig struct {
	LastAssessmentTTL time.Duration `mapstructure:"last_assessment_ttl"`
	DashboardTTL      time.Duration `mapstructure:"dashboard_ttl"`
}

// Load reads configuration from an optional file and the environment.
// An empty path searches for .env in the working directory and ./config.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".env")
		v.SetConfigType("env")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Redis.Addr = strings.TrimPrefix(cfg.Redis.Addr, "redis://")

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "mindcare")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("jwt.secret", "mindcare-dev-secret-change-in-production")
	v.SetDefault("jwt.ttl", 24*time.Hour)

	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("cors.allowed_methods", "GET, POST, PUT, DELETE, OPTIONS")
	v.SetDefault("cors.allowed_headers", "Content-Type, Authorization")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("cache.last_assessment_ttl", 30*24*time.Hour)
	v.SetDefault("cache.dashboard_ttl", 5*time.Minute)

	setCounselorDefaults(v)
	v.SetDefault("demo_accounts", defaultDemoAccounts())
}

// Addr is the HTTP listen address
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
