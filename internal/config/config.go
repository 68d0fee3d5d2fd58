package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort             int            `json:"server_port"`
	SessionSecretKey       string         `json:"session_secret_key"`
	SessionExpirationHours int            `json:"session_expiration_hours"`
	SessionCookieSecure    bool           `json:"session_cookie_secure"`
	DefaultRateLimit       int            `json:"default_rate_limit"`
	GlobalRateLimit        int            `json:"global_rate_limit"`
	RefreshInterval        time.Duration  `json:"refresh_interval"`
	TrialDays              int            `json:"trial_days"`
	Location               *time.Location `json:"-"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 10000
	}

	sessionExpirationHours, _ := strconv.Atoi(os.Getenv("SESSION_EXPIRATION_HOURS"))
	if sessionExpirationHours == 0 {
		sessionExpirationHours = 24
	}

	defaultRateLimit, _ := strconv.Atoi(os.Getenv("DEFAULT_RATE_LIMIT"))
	if defaultRateLimit == 0 {
		defaultRateLimit = 1000 // 1000 requests per minute per owner
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 10000 // 10000 requests per minute globally per IP
	}

	secret := os.Getenv("SESSION_SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET_KEY is required")
	}

	location, err := time.LoadLocation(getEnvWithDefault("APP_TIMEZONE", "Asia/Manila"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}

	cookieSecure, _ := strconv.ParseBool(os.Getenv("SESSION_COOKIE_SECURE"))

	return &Config{
		ServerPort:             serverPort,
		SessionSecretKey:       secret,
		SessionExpirationHours: sessionExpirationHours,
		SessionCookieSecure:    cookieSecure,
		DefaultRateLimit:       defaultRateLimit,
		GlobalRateLimit:        globalRateLimit,
		RefreshInterval:        getEnvDurationWithDefault("REFRESH_INTERVAL", 30*time.Second),
		TrialDays:              getEnvIntWithDefault("TRIAL_DAYS", 7),
		Location:               location,
	}, nil
}

// SessionTTL is the lifetime of a session token and of its registry entry.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionExpirationHours) * time.Hour
}
