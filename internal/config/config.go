package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvConfigFile names an optional YAML file; environment variables win over it.
const EnvConfigFile = "LOSTFOUND_CONFIG"

type Config struct {
	AppPort string

	DBDriver   string
	DBLogLevel string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	PostgresDSN string
	SQLitePath  string

	// empty disables redis: no idempotency middleware, no lookup cache
	RedisAddr string
	RedisDB   int

	IdempTTLSecs  int
	LookupTTLSecs int
}

func defaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("MYSQL_HOST", "mysql")
	v.SetDefault("MYSQL_PORT", "3306")
	v.SetDefault("MYSQL_DB", "lostfound")
	v.SetDefault("MYSQL_USER", "lostfound")
	v.SetDefault("MYSQL_PASS", "lostfound")
	v.SetDefault("POSTGRES_DSN", "")
	v.SetDefault("SQLITE_PATH", "lostfound.db")
	v.SetDefault("REDIS_ADDR", "redis:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("IDEMPOTENCY_TTL_SECONDS", 300)
	v.SetDefault("LOOKUP_CACHE_TTL_SECONDS", 60)
}

// Load reads the environment, plus the YAML file named by LOSTFOUND_CONFIG
// when set.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(EnvConfigFile))
}

// LoadFile is Load with an explicit config file; path may be empty.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	c := &Config{
		AppPort:    v.GetString("APP_PORT"),
		DBDriver:   strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DBLogLevel: v.GetString("DB_LOG_LEVEL"),
		MySQLHost:  v.GetString("MYSQL_HOST"),
		MySQLPort:  v.GetString("MYSQL_PORT"),
		MySQLDB:    v.GetString("MYSQL_DB"),
		MySQLUser:  v.GetString("MYSQL_USER"),
		MySQLPass:  v.GetString("MYSQL_PASS"),

		PostgresDSN: v.GetString("POSTGRES_DSN"),
		SQLitePath:  v.GetString("SQLITE_PATH"),

		RedisAddr:     strings.TrimSpace(v.GetString("REDIS_ADDR")),
		RedisDB:       v.GetInt("REDIS_DB"),
		IdempTTLSecs:  v.GetInt("IDEMPOTENCY_TTL_SECONDS"),
		LookupTTLSecs: v.GetInt("LOOKUP_CACHE_TTL_SECONDS"),
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case "mysql":
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		// ensure port is valid
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("missing POSTGRES_DSN")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want mysql, postgres or sqlite)", c.DBDriver)
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("IDEMPOTENCY_TTL_SECONDS must be positive, got %d", c.IdempTTLSecs)
	}
	if c.LookupTTLSecs < 0 {
		return fmt.Errorf("LOOKUP_CACHE_TTL_SECONDS must not be negative, got %d", c.LookupTTLSecs)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	switch c.DBDriver {
	case "postgres":
		return c.PostgresDSN
	case "sqlite":
		return c.SQLitePath
	default:
		return c.MySQLDSN()
	}
}

func (c *Config) RedisEnabled() bool { return c.RedisAddr != "" }

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) LookupTTL() time.Duration {
	return time.Duration(c.LookupTTLSecs) * time.Second
}
