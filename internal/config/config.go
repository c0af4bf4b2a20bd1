package config

import (
	"errors"
	"os"
	"strings"
)

// Config holds everything the server needs from the environment.
// It is loaded once in main and injected; nothing else reads os.Getenv.
type Config struct {
	Addr        string
	DBDsn       string
	JWTSecret   string
	UploadDir   string
	BaseURL     string
	CORSOrigins []string
	LogLevel    string
}

const (
	defaultAddr      = ":5000"
	defaultDSN       = "root:root@tcp(127.0.0.1:3306)/ecommerces?parseTime=true"
	defaultUploadDir = "upload/images"
	defaultBaseURL   = "http://localhost:5000"
	// The two local storefront origins the original client runs on.
	defaultOrigins = "http://localhost:3000,http://localhost:3001"
)

// ErrMissingSecret means JWT_SECRET was not set. There is deliberately no
// fallback: tokens signed with a baked-in key would survive source leaks.
var ErrMissingSecret = errors.New("config: JWT_SECRET is not set")

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return Config{}, ErrMissingSecret
	}

	return Config{
		Addr:        getEnv("SERVER_ADDR", defaultAddr),
		DBDsn:       getEnv("DB_DSN", defaultDSN),
		JWTSecret:   secret,
		UploadDir:   getEnv("UPLOAD_DIR", defaultUploadDir),
		BaseURL:     getEnv("BASE_URL", defaultBaseURL),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", defaultOrigins), ","),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}, nil
}
