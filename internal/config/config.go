package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

const AppName = "osca-backend"

type Config struct {
	AppName string
	AppPort string
	DBUrl   string

	// FrontendURL is the single allowed CORS origin.
	FrontendURL string

	SessionCookieName string
	SessionMaxAge     time.Duration
	SweepInterval     time.Duration

	UploadsDir    string
	SMSGatewayURL string
}

const (
	defaultCookieName    = "oscaims_sid"
	defaultSessionMaxAge = 24 * time.Hour
	defaultSweepInterval = 5 * time.Minute
	defaultGatewayURL    = "https://api.itexmo.com/api/broadcast"
)

// LoadConfig reads the environment once at startup. Required values are
// fatal when missing; optional ones fall back to defaults.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found, relying on environment")
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "3000"
	}
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}

	cookieName := os.Getenv("SESSION_COOKIE_NAME")
	if cookieName == "" {
		cookieName = defaultCookieName
	}
	sessionMaxAge := durationEnv("SESSION_MAX_AGE", defaultSessionMaxAge)
	sweepInterval := durationEnv("SWEEP_INTERVAL", defaultSweepInterval)

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "uploads"
	}
	gatewayURL := os.Getenv("SMS_GATEWAY_URL")
	if gatewayURL == "" {
		gatewayURL = defaultGatewayURL
	}

	utils.Logger.Infof("Loaded config for %s (port %s)", AppName, appPort)

	return &Config{
		AppName:           AppName,
		AppPort:           appPort,
		DBUrl:             dbURL,
		FrontendURL:       frontendURL,
		SessionCookieName: cookieName,
		SessionMaxAge:     sessionMaxAge,
		SweepInterval:     sweepInterval,
		UploadsDir:        uploadsDir,
		SMSGatewayURL:     gatewayURL,
	}
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		utils.Logger.Warnf("Invalid %s '%s', defaulting to %v", key, raw, fallback)
		return fallback
	}
	return d
}
