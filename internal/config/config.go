package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the application.
type Config struct {
	AppName     string
	Environment string
	HTTP        HTTPConfig
	Storage     StorageConfig
	JWT         JWTConfig
	Bootstrap   BootstrapConfig
	Monitor     MonitorConfig
	Context     ContextConfig
	Logger      LoggerConfig
}

type HTTPConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	MaxConn      int
}

// StorageConfig selects the key-value driver holding the serialized database
// blob and names the slots the portal uses.
type StorageConfig struct {
	Driver        string // bolt, memory or redis
	Path          string
	Bucket        string
	Key           string
	AdminSlot     string
	CustomerSlot  string
	RedisURL      string
	RedisPassword string
	RedisDB       int
}

type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// BootstrapConfig seeds the first back-office account on an empty database.
type BootstrapConfig struct {
	AdminEmail    string
	AdminPassword string
}

type MonitorConfig struct {
	Interval time.Duration
}

type ContextConfig struct {
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the service can boot in any environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "bank-portal"),
		Environment: getString("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Host:         getString("SERVER_HOST", "0.0.0.0"),
			Port:         getString("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
			MaxConn:      getInt("SERVER_MAX_CONN", 0),
		},
		Storage: StorageConfig{
			Driver:        getString("STORAGE_DRIVER", "bolt"),
			Path:          getString("BOLTDB_PATH", "./data/portal.db"),
			Bucket:        getString("BOLTDB_BUCKET", "slots"),
			Key:           getString("STORAGE_KEY", "bank_portal_db"),
			AdminSlot:     getString("STORAGE_ADMIN_SLOT", "bank_portal_current_admin"),
			CustomerSlot:  getString("STORAGE_CUSTOMER_SLOT", "bank_portal_current_customer"),
			RedisURL:      getString("REDIS_URL", "redis://localhost:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       getInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getString("JWT_SECRET", "dev-secret-change-me"),
			Issuer: getString("JWT_ISSUER", "bank-portal"),
			TTL:    getDuration("JWT_TTL", 12*time.Hour),
		},
		Bootstrap: BootstrapConfig{
			AdminEmail:    getString("BOOTSTRAP_ADMIN_EMAIL", "admin@portal.local"),
			AdminPassword: getString("BOOTSTRAP_ADMIN_PASSWORD", "changeme"),
		},
		Monitor: MonitorConfig{
			Interval: getDuration("MONITOR_INTERVAL_SECONDS", 10*time.Second),
		},
		Context: ContextConfig{
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

// Address returns the HTTP listen address for the fasthttp server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.HTTP.Host, c.HTTP.Port)
}
