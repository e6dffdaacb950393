package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Redis     RedisConfig
	DB        DBConfig
	Auth      AuthConfig
	Alerts    AlertsConfig
	RateLimit string `env:"RATE_LIMIT" envDefault:"300-M"`
}

type ServerConfig struct {
	Port                 string        `env:"PORT" envDefault:"8080"`
	GRPCPort             string        `env:"GRPC_PORT" envDefault:"50051"`
	AllowedOrigins       []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	SlowRequestThreshold time.Duration `env:"SLOW_REQUEST_THRESHOLD" envDefault:"500ms"`
}

type BackendConfig struct {
	BaseURL string        `env:"BACKEND_URL" envDefault:"http://localhost:5000"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
	// ServiceToken authenticates scheduled jobs that run without a dashboard session.
	ServiceToken string `env:"BACKEND_SERVICE_TOKEN"`
}

type DBConfig struct {
	AuditDSN string `env:"AUDIT_DSN"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET" envDefault:"change-me-dashboard-secret"`
	TokenTTL  time.Duration `env:"JWT_TTL" envDefault:"12h"`
}

type AlertsConfig struct {
	Schedule     string `env:"ALERT_SCHEDULE" envDefault:"0 9 * * *"`
	WindowDays   int    `env:"ALERT_WINDOW_DAYS" envDefault:"30"`
	TwilioSID    string `env:"TWILIO_ACCOUNT_SID"`
	TwilioToken  string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFrom   string `env:"TWILIO_FROM"`
	RecipientSMS string `env:"ALERT_SMS_TO"`
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c AlertsConfig) SMSEnabled() bool {
	return c.TwilioSID != "" && c.TwilioToken != "" && c.TwilioFrom != "" && c.RecipientSMS != ""
}
