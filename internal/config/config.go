// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreSQL    = "sql"
)

type Config struct {
	ServerPort      string
	Env             string
	LogLevel        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	IdeasCount      int
	IdeasSeed       int64
	IdeasStore      string
	IdeasSQLDSN     string
	DefaultPageSize int

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	StaticDir        string
	CORSAllowOrigins []string

	APIBaseURL    string
	ProxyURL      string
	Fingerprint   bool
	DateLocale    string
	ClientTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	store := strings.ToLower(getEnv("IDEAS_STORE", StoreMemory))
	if store != StoreMemory && store != StoreSQL {
		return nil, fmt.Errorf("invalid IDEAS_STORE %q, must be %q or %q", store, StoreMemory, StoreSQL)
	}

	proxyURL := strings.TrimSpace(os.Getenv("IDEAS_PROXY_URL"))
	if proxyURL != "" {
		if err := ValidateProxyURL(proxyURL); err != nil {
			return nil, err
		}
	}

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "3000"),
		Env:              getEnv("APP_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ReadTimeout:      getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:     getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout:  getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		IdeasCount:       getEnvInt("IDEAS_COUNT", 100),
		IdeasSeed:        int64(getEnvInt("IDEAS_SEED", 0)),
		IdeasStore:       store,
		IdeasSQLDSN:      getEnv("IDEAS_SQL_DSN", "file::memory:?cache=shared"),
		DefaultPageSize:  getEnvInt("IDEAS_DEFAULT_PAGE_SIZE", 10),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		CacheTTL:         getEnvDuration("CACHE_TTL", 30*time.Second),
		StaticDir:        getEnv("STATIC_DIR", "public"),
		CORSAllowOrigins: getEnvList("CORS_ALLOW_ORIGINS", []string{"*"}),
		APIBaseURL:       getEnv("IDEAS_API_URL", "http://localhost:3000"),
		ProxyURL:         proxyURL,
		Fingerprint:      getEnvBool("IDEAS_TLS_FINGERPRINT", false),
		DateLocale:       getEnv("IDEAS_DATE_LOCALE", "id-ID"),
		ClientTimeout:    getEnvDuration("CLIENT_TIMEOUT", 0),
	}, nil
}

// IsDevelopment reports whether logs should be human readable.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}

// ValidateProxyURL accepts http, https and socks5 proxies.
func ValidateProxyURL(raw string) error {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") && !strings.HasPrefix(raw, "socks5://") {
		return fmt.Errorf("invalid proxy URL format, must start with http://, https:// or socks5://: %s", raw)
	}
	if _, err := url.Parse(raw); err != nil {
		return fmt.Errorf("invalid proxy URL %s: %w", raw, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func getEnvList(key string, defaultValue []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
