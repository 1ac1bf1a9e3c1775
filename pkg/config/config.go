package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/common"
)

type Config struct {
	Env string `mapstructure:"GO_ENV"`

	KVBackend     string `mapstructure:"CC_KV_BACKEND"`
	DBPath        string `mapstructure:"CC_DB_PATH"`
	PostgresDSN   string `mapstructure:"CC_POSTGRES_DSN"`
	RedisAddr     string `mapstructure:"CC_REDIS_ADDR"`
	RedisPassword string `mapstructure:"CC_REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"CC_REDIS_DB"`
	MongoURI      string `mapstructure:"CC_MONGO_URI"`
	MongoDatabase string `mapstructure:"CC_MONGO_DATABASE"`

	HTTPHostPort string   `mapstructure:"CC_HTTP_HOST_PORT"`
	GRPCHostPort string   `mapstructure:"CC_GRPC_HOST_PORT"`
	CorsOrigins  []string `mapstructure:"CC_CORS_ORIGINS"`

	DefaultRate  float64 `mapstructure:"CC_DEFAULT_RATE"`
	DefaultBurst int     `mapstructure:"CC_DEFAULT_BURST"`

	JWTSecret string        `mapstructure:"CC_JWT_SECRET"`
	TokenTTL  time.Duration `mapstructure:"CC_TOKEN_TTL"`

	NotifyPlatform string   `mapstructure:"CC_NOTIFY_PLATFORM"`
	Deliverers     []string `mapstructure:"CC_NOTIFY_DELIVERERS"`
	FirebaseCreds  string   `mapstructure:"CC_FIREBASE_CREDENTIALS"`
	FCMTopicPrefix string   `mapstructure:"CC_FCM_TOPIC_PREFIX"`
	SMTPHost       string   `mapstructure:"CC_SMTP_HOST"`
	SMTPPort       int      `mapstructure:"CC_SMTP_PORT"`
	SMTPUser       string   `mapstructure:"CC_SMTP_USER"`
	SMTPPass       string   `mapstructure:"CC_SMTP_PASS"`
	SMTPFrom       string   `mapstructure:"CC_SMTP_FROM"`
	Timezone       string   `mapstructure:"CC_TIMEZONE"`
	SeedDemo       bool     `mapstructure:"CC_SEED_DEMO"`
	SeedPassword   string   `mapstructure:"CC_SEED_PASSWORD"`
}

var validBackends = []string{"file", "memory", "postgres", "redis", "mongo"}
var validPlatforms = []string{"calendar", "interval", "none"}

func setDefaults(v *viper.Viper) {
	v.SetDefault(common.EnvKeyGoEnv, "development")
	v.SetDefault(common.EnvKeyKVBackend, "file")
	v.SetDefault(common.EnvKeyDbPath, "companion.db")
	v.SetDefault(common.EnvKeyPostgresDSN, "")
	v.SetDefault(common.EnvKeyRedisAddr, "localhost:6379")
	v.SetDefault(common.EnvKeyRedisPassword, "")
	v.SetDefault(common.EnvKeyRedisDB, 0)
	v.SetDefault(common.EnvKeyMongoURI, "mongodb://localhost:27017")
	v.SetDefault(common.EnvKeyMongoDatabase, "companion")
	v.SetDefault(common.EnvKeyHttpHostPort, ":1080")
	v.SetDefault(common.EnvKeyGrpcHostPort, "")
	v.SetDefault(common.EnvKeyCorsOrigins, "*")
	v.SetDefault(common.EnvKeyDefaultRate, 5.0)
	v.SetDefault(common.EnvKeyDefaultBurst, 10)
	v.SetDefault(common.EnvKeyJWTSecret, "")
	v.SetDefault(common.EnvKeyTokenTTL, "72h")
	v.SetDefault(common.EnvKeyNotifyPlatform, "interval")
	v.SetDefault(common.EnvKeyDeliverers, "log")
	v.SetDefault(common.EnvKeyFirebaseCreds, "")
	v.SetDefault(common.EnvKeyFCMTopicPrefix, "elderly-")
	v.SetDefault(common.EnvKeySMTPHost, "")
	v.SetDefault(common.EnvKeySMTPPort, 587)
	v.SetDefault(common.EnvKeySMTPUser, "")
	v.SetDefault(common.EnvKeySMTPPass, "")
	v.SetDefault(common.EnvKeySMTPFrom, "")
	v.SetDefault(common.EnvKeyTimezone, "Local")
	v.SetDefault(common.EnvKeySeedDemo, false)
	v.SetDefault(common.EnvKeySeedPassword, "companion-demo")
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	logger := common.GetLoggerWith("config")

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file loaded, copy .env.example to .env first if in development", zap.Error(err))
	}

	return FromViper(viper.New())
}

func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.CorsOrigins = splitList(cfg.CorsOrigins)
	cfg.Deliverers = splitList(cfg.Deliverers)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if !common.Contains(validBackends, c.KVBackend) {
		return fmt.Errorf("unknown %s: %q", common.EnvKeyKVBackend, c.KVBackend)
	}
	if !common.Contains(validPlatforms, c.NotifyPlatform) {
		return fmt.Errorf("unknown %s: %q", common.EnvKeyNotifyPlatform, c.NotifyPlatform)
	}
	if c.KVBackend == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("%s is required for the postgres backend", common.EnvKeyPostgresDSN)
	}
	if c.DefaultRate <= 0 {
		return fmt.Errorf("invalid %s, should be a positive float64 value", common.EnvKeyDefaultRate)
	}
	if c.DefaultBurst <= 0 {
		return fmt.Errorf("invalid %s, should be a positive int value", common.EnvKeyDefaultBurst)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("invalid %s", common.EnvKeyTokenTTL)
	}
	if c.JWTSecret == "" && c.Env == "production" {
		return fmt.Errorf("%s must be set in production", common.EnvKeyJWTSecret)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid %s: %w", common.EnvKeyTimezone, err)
	}
	return nil
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// splitList flattens values given as one comma separated env string.
func splitList(values []string) []string {
	out := []string{}
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
