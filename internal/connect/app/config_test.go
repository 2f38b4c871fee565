package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Env:                 "prod",
		Port:                4000,
		ShutdownGracePeriod: 10 * time.Second,
		DatabaseFile:        "connect.db",
		PepperFile:          "pepper",
		OTPSecret:           "0123456789abcdef-otp",
		OTPTTL:              24 * time.Hour,
		OTPLength:           10,
		TokenSecret:         "0123456789abcdef-token",
		TokenTTL:            7 * 24 * time.Hour,
		MailDriver:          MailDriverSMTP,
		MailFrom:            "Connect ++ <no-reply@muj.manipal.edu>",
		MailDomain:          "muj.manipal.edu",
		SMTPHost:            "smtp.example.com",
		SMTPPort:            587,
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"ENV", "PORT", "OTP_TTL", "OTP_LENGTH", "TOKEN_TTL", "MAIL_DRIVER",
		"MAIL_FROM", "MAIL_DOMAIN", "SMTP_HOST", "SMTP_PORT", "DATABASE_FILE",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 4000, cfg.Port)
	require.Equal(t, 24*time.Hour, cfg.OTPTTL)
	require.Equal(t, 10, cfg.OTPLength)
	require.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	require.Equal(t, MailDriverLog, cfg.MailDriver)
	require.Equal(t, "muj.manipal.edu", cfg.MailDomain)
	require.Equal(t, "Connect ++ <no-reply@muj.manipal.edu>", cfg.MailFrom)
	require.Equal(t, 587, cfg.SMTPPort)
	require.Equal(t, "connect.db", cfg.DatabaseFile)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("OTP_TTL", "30m")
	t.Setenv("TOKEN_TTL", "90")
	t.Setenv("SMTP_HOST", "mailpit")
	t.Setenv("MAIL_DRIVER", "")
	t.Setenv("MAIL_FROM", "")
	t.Setenv("MAIL_DOMAIN", "students.example.edu")

	cfg := LoadConfig()
	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, 30*time.Minute, cfg.OTPTTL)
	require.Equal(t, 90*time.Minute, cfg.TokenTTL)
	require.Equal(t, MailDriverSMTP, cfg.MailDriver)
	require.Equal(t, "Connect ++ <no-reply@students.example.edu>", cfg.MailFrom)
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("OTP_TTL", "soon")

	cfg := LoadConfig()
	require.Equal(t, 4000, cfg.Port)
	require.Equal(t, 24*time.Hour, cfg.OTPTTL)
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cases := map[string]func(*Config){
		"missing otp secret":   func(c *Config) { c.OTPSecret = "" },
		"short token secret":   func(c *Config) { c.TokenSecret = "short" },
		"shared secret":        func(c *Config) { c.TokenSecret = c.OTPSecret },
		"bad port":             func(c *Config) { c.Port = 70000 },
		"zero otp ttl":         func(c *Config) { c.OTPTTL = 0 },
		"tiny otp":             func(c *Config) { c.OTPLength = 2 },
		"unknown mail driver":  func(c *Config) { c.MailDriver = "carrier-pigeon" },
		"smtp without host":    func(c *Config) { c.SMTPHost = "" },
		"missing database":     func(c *Config) { c.DatabaseFile = " " },
		"missing pepper file":  func(c *Config) { c.PepperFile = "" },
		"non-positive tok ttl": func(c *Config) { c.TokenTTL = -time.Second },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestEnsureDevSecrets(t *testing.T) {
	cfg := validConfig()
	cfg.Env = "dev"
	cfg.OTPSecret = ""
	cfg.TokenSecret = ""
	require.Error(t, cfg.Validate())

	generated, err := cfg.EnsureDevSecrets()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"OTP_SECRET", "TOKEN_SECRET"}, generated)
	require.NotEqual(t, cfg.OTPSecret, cfg.TokenSecret)
	require.NoError(t, cfg.Validate())

	// Existing secrets are kept.
	keep := cfg.OTPSecret
	generated, err = cfg.EnsureDevSecrets()
	require.NoError(t, err)
	require.Empty(t, generated)
	require.Equal(t, keep, cfg.OTPSecret)
}
