package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
	DriverMemory = "memory"
)

type Config struct {
	AppPort           string `envconfig:"APP_PORT" default:"8080"`
	TranslationFolder string `envconfig:"TRANSLATION_FOLDER" default:"pkg/translator/translation"`

	DbDriver   string `envconfig:"DB_DRIVER" default:"mysql"`
	DbHost     string `envconfig:"MYSQL_HOST" default:"db"`
	DbPort     string `envconfig:"MYSQL_PORT" default:"3306"`
	DbUser     string `envconfig:"MYSQL_USER" default:"taskboard"`
	DbPassword string `envconfig:"MYSQL_PASSWORD" default:"taskboard"`
	DbName     string `envconfig:"MYSQL_DATABASE" default:"taskboard"`
	DbParams   string `envconfig:"MYSQL_PARAMS" default:"parseTime=true"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"taskboard.db"`

	JWTSecret string        `envconfig:"JWT_SECRET"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"168h"`

	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	TrustedProxies     []string      `envconfig:"TRUSTED_PROXIES"`
	ReadTimeout        time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout       time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// LoadConfig reads .env (if present) and then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.CORSAllowedOrigins = trimList(cfg.CORSAllowedOrigins)
	cfg.TrustedProxies = trimList(cfg.TrustedProxies)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.DbDriver {
	case DriverMySQL, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DbDriver)
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	return nil
}

func trimList(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		trimmed = append(trimmed, value)
	}

	if len(trimmed) == 0 {
		return nil
	}

	return trimmed
}
