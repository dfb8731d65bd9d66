package config

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Purchase update policies.
const (
	PolicyLocation  = "location"
	PolicyReconcile = "reconcile"
)

// Config is the runtime configuration, read from the environment.
type Config struct {
	AppPort  string
	AppEnv   string
	LogLevel string

	DBDriver        string
	DatabaseDSN     string
	DBIsolation     sql.IsolationLevel
	DBMaxOpenConns  int
	DBAutoMigrate   bool
	DBSlowThreshold time.Duration

	PurchaseUpdatePolicy string

	AuthEnabled bool
	JWTSecret   string
	JWTTTL      time.Duration

	RabbitMQURL      string
	RabbitMQExchange string
	RabbitMQQueue    string
	RabbitMQConsume  bool
}

// IsDevelopment reports whether detailed errors may be shown to clients.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=inventory port=5432 sslmode=disable")
	v.SetDefault("DB_ISOLATION_LEVEL", "read committed")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("DB_SLOW_THRESHOLD", "200ms")
	v.SetDefault("PURCHASE_UPDATE_POLICY", PolicyLocation)
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "inventory")
	v.SetDefault("RABBITMQ_QUEUE", "stock_events")
	v.SetDefault("RABBITMQ_CONSUME", false)
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from v and validates enumerated values.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppPort:              v.GetString("APP_PORT"),
		AppEnv:               strings.ToLower(v.GetString("APP_ENV")),
		LogLevel:             v.GetString("LOG_LEVEL"),
		DBDriver:             strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseDSN:          v.GetString("DATABASE_DSN"),
		DBMaxOpenConns:       v.GetInt("DB_MAX_OPEN_CONNS"),
		DBAutoMigrate:        v.GetBool("DB_AUTO_MIGRATE"),
		DBSlowThreshold:      v.GetDuration("DB_SLOW_THRESHOLD"),
		PurchaseUpdatePolicy: strings.ToLower(v.GetString("PURCHASE_UPDATE_POLICY")),
		AuthEnabled:          v.GetBool("AUTH_ENABLED"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTTTL:               v.GetDuration("JWT_TTL"),
		RabbitMQURL:          v.GetString("RABBITMQ_URL"),
		RabbitMQExchange:     v.GetString("RABBITMQ_EXCHANGE"),
		RabbitMQQueue:        v.GetString("RABBITMQ_QUEUE"),
		RabbitMQConsume:      v.GetBool("RABBITMQ_CONSUME"),
	}

	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		return cfg, fmt.Errorf("invalid DB_DRIVER %q: use postgres or sqlite", cfg.DBDriver)
	}

	level, err := ParseIsolation(v.GetString("DB_ISOLATION_LEVEL"))
	if err != nil {
		return cfg, err
	}
	cfg.DBIsolation = level

	switch cfg.PurchaseUpdatePolicy {
	case PolicyLocation, PolicyReconcile:
	default:
		return cfg, fmt.Errorf("invalid PURCHASE_UPDATE_POLICY %q: use %s or %s", cfg.PurchaseUpdatePolicy, PolicyLocation, PolicyReconcile)
	}

	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is required when AUTH_ENABLED is set")
	}
	if cfg.JWTTTL <= 0 {
		return cfg, fmt.Errorf("invalid JWT_TTL %q", v.GetString("JWT_TTL"))
	}
	return cfg, nil
}

// ParseIsolation maps an isolation level name such as "read committed" or
// "serializable" to its sql constant. "default" and "" keep the driver
// default.
func ParseIsolation(name string) (sql.IsolationLevel, error) {
	normalized := strings.Join(strings.Fields(strings.ToLower(strings.ReplaceAll(name, "_", " "))), " ")
	switch normalized {
	case "", "default":
		return sql.LevelDefault, nil
	case "read uncommitted":
		return sql.LevelReadUncommitted, nil
	case "read committed":
		return sql.LevelReadCommitted, nil
	case "repeatable read":
		return sql.LevelRepeatableRead, nil
	case "serializable":
		return sql.LevelSerializable, nil
	}
	return sql.LevelDefault, fmt.Errorf("invalid DB_ISOLATION_LEVEL %q", name)
}
