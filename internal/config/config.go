package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET_KEY is required")

type Config struct {
	AppEnv             string        `json:"app_env"`
	LogLevel           string        `json:"log_level"`
	ServerPort         int           `json:"server_port"`
	JWTSecretKey       string        `json:"jwt_secret_key"`
	JWTExpirationHours int           `json:"jwt_expiration_hours"`
	JWTIssuer          string        `json:"jwt_issuer"`
	FrontendURL        string        `json:"frontend_url"`
	InvitationTTL      time.Duration `json:"invitation_ttl"`
	BcryptCost         int           `json:"bcrypt_cost"`
	DefaultRateLimit   int           `json:"default_rate_limit"`
	GlobalRateLimit    int           `json:"global_rate_limit"`
	MigrateOnStart     bool          `json:"migrate_on_start"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 10000
	}

	jwtExpirationHours, _ := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if jwtExpirationHours == 0 {
		jwtExpirationHours = 24
	}

	defaultRateLimit, _ := strconv.Atoi(os.Getenv("DEFAULT_RATE_LIMIT"))
	if defaultRateLimit == 0 {
		defaultRateLimit = 1000 // 1000 requests per minute per tenant
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 10000 // 10000 requests per minute globally per IP
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	return &Config{
		AppEnv:             getEnvWithDefault("APP_ENV", EnvDevelopment),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		ServerPort:         serverPort,
		JWTSecretKey:       secret,
		JWTExpirationHours: jwtExpirationHours,
		JWTIssuer:          getEnvWithDefault("JWT_ISSUER", "notes-api"),
		FrontendURL:        strings.TrimRight(getEnvWithDefault("FRONTEND_URL", "http://localhost:3000"), "/"),
		InvitationTTL:      getEnvDurationWithDefault("INVITATION_TTL", 7*24*time.Hour),
		BcryptCost:         getEnvIntWithDefault("BCRYPT_COST", 10),
		DefaultRateLimit:   defaultRateLimit,
		GlobalRateLimit:    globalRateLimit,
		MigrateOnStart:     getEnvBoolWithDefault("MIGRATE_ON_START", true),
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func (c *Config) JWTExpiration() time.Duration {
	return time.Duration(c.JWTExpirationHours) * time.Hour
}
