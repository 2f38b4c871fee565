package app

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/connect/pkg/cryptox"
	"github.com/joho/godotenv"
)

// Mail drivers.
const (
	MailDriverSMTP = "smtp"
	MailDriverLog  = "log"
)

// minSecretLen matches the shortest secret the codec accepts.
const minSecretLen = 16

type Config struct {
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 4000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	DatabaseFile string // Path to SQLite database file (default: ./connect.db)
	PepperFile   string // Path to file containing pepper for password hashing (default: ./pepper)

	OTPSecret   string        // Required outside dev: secret of the OTP codec
	OTPTTL      time.Duration // Validity of a mailed OTP (default: 24h)
	OTPLength   int           // Characters per OTP (default: 10)
	TokenSecret string        // Required outside dev: secret of the token codec
	TokenTTL    time.Duration // Validity of sign-up and user access tokens (default: 7 days)

	MailDriver   string // smtp or log (default: smtp when SMTP_HOST is set, else log)
	MailFrom     string // Sender of sign-up mail
	MailDomain   string // Student mail domain (default: muj.manipal.edu)
	SMTPHost     string
	SMTPPort     int // (default: 587)
	SMTPUsername string
	SMTPPassword string

	RegNoPattern string // Optional: overrides the registration number regex
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first; variables already set win.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 4000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "connect.db"),
		PepperFile:   getEnvOrDefault("PEPPER_FILE", "pepper"),

		OTPSecret:   os.Getenv("OTP_SECRET"),
		OTPTTL:      getEnvDurationOrDefault("OTP_TTL", 24*time.Hour),
		OTPLength:   getEnvIntOrDefault("OTP_LENGTH", 10),
		TokenSecret: os.Getenv("TOKEN_SECRET"),
		TokenTTL:    getEnvDurationOrDefault("TOKEN_TTL", 7*24*time.Hour),

		MailDomain:   getEnvOrDefault("MAIL_DOMAIN", "muj.manipal.edu"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		RegNoPattern: os.Getenv("REGNO_PATTERN"),
	}

	cfg.MailFrom = getEnvOrDefault("MAIL_FROM", "Connect ++ <no-reply@"+cfg.MailDomain+">")

	defaultDriver := MailDriverLog
	if cfg.SMTPHost != "" {
		defaultDriver = MailDriverSMTP
	}
	cfg.MailDriver = strings.ToLower(getEnvOrDefault("MAIL_DRIVER", defaultDriver))

	return cfg
}

// IsDev reports whether the service runs in the development environment.
func (c Config) IsDev() bool {
	return c.Env == "dev"
}

// Validate checks the configuration. In dev, call EnsureDevSecrets first so
// missing codec secrets do not fail validation.
func (c Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.OTPTTL <= 0 {
		errs = append(errs, errors.New("OTP_TTL must be positive"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if c.OTPLength < 4 || c.OTPLength > 64 {
		errs = append(errs, fmt.Errorf("OTP_LENGTH %d must be between 4 and 64", c.OTPLength))
	}
	if strings.TrimSpace(c.DatabaseFile) == "" {
		errs = append(errs, errors.New("DATABASE_FILE is required"))
	}
	if strings.TrimSpace(c.PepperFile) == "" {
		errs = append(errs, errors.New("PEPPER_FILE is required"))
	}

	switch c.MailDriver {
	case MailDriverSMTP:
		if c.SMTPHost == "" {
			errs = append(errs, errors.New("SMTP_HOST is required by the smtp mail driver"))
		}
		if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
			errs = append(errs, fmt.Errorf("SMTP_PORT %d out of range", c.SMTPPort))
		}
	case MailDriverLog:
	default:
		errs = append(errs, fmt.Errorf("unknown MAIL_DRIVER %q", c.MailDriver))
	}

	errs = append(errs, c.validateSecrets()...)

	return errors.Join(errs...)
}

func (c Config) validateSecrets() []error {
	var errs []error
	if len(c.OTPSecret) < minSecretLen {
		errs = append(errs, fmt.Errorf("OTP_SECRET must be at least %d bytes", minSecretLen))
	}
	if len(c.TokenSecret) < minSecretLen {
		errs = append(errs, fmt.Errorf("TOKEN_SECRET must be at least %d bytes", minSecretLen))
	}
	if c.OTPSecret != "" && c.OTPSecret == c.TokenSecret {
		errs = append(errs, errors.New("OTP_SECRET and TOKEN_SECRET must differ"))
	}
	return errs
}

// EnsureDevSecrets generates the codec secrets that are unset and returns
// the names of the variables it filled. Tokens minted with generated
// secrets do not survive a restart.
func (c *Config) EnsureDevSecrets() ([]string, error) {
	var generated []string
	for _, s := range []struct {
		name  string
		value *string
	}{
		{"OTP_SECRET", &c.OTPSecret},
		{"TOKEN_SECRET", &c.TokenSecret},
	} {
		if *s.value != "" {
			continue
		}
		raw, err := cryptox.GenerateSecret(32)
		if err != nil {
			return generated, fmt.Errorf("generate %s: %w", s.name, err)
		}
		*s.value = base64.RawURLEncoding.EncodeToString(raw)
		generated = append(generated, s.name)
	}
	return generated, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
