package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/connect/internal/connect/http"
	"github.com/aussiebroadwan/connect/internal/connect/mail"
	"github.com/aussiebroadwan/connect/internal/connect/service"
	"github.com/aussiebroadwan/connect/internal/connect/store"
	"github.com/aussiebroadwan/connect/internal/connect/store/drivers/sqlite"
	"github.com/aussiebroadwan/connect/internal/dependencies/clock"
	"github.com/aussiebroadwan/connect/pkg/cryptox"
	"github.com/aussiebroadwan/connect/pkg/slogx"
)

// BuildVersion is overridden at build time with
// -ldflags "-X github.com/aussiebroadwan/connect/internal/connect/app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Codec names. They are bound into every token, so changing one
// invalidates all outstanding tokens of that kind.
const (
	otpCodecName   = "connect-otp"
	tokenCodecName = "connect-token"
)

// Application encapsulates the service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger
	clock  clock.Clock

	db *sqlite.Store

	tokenService        *service.TokenService
	registrationService *service.RegistrationService
	profileService      *service.ProfileService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "connect",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		clock: clock.New(),
	}

	if app.cfg.IsDev() {
		generated, err := app.cfg.EnsureDevSecrets()
		if err != nil {
			return nil, err
		}
		if len(generated) > 0 {
			app.logger.Warn("codec secrets generated for this process; tokens will not survive a restart",
				"vars", generated)
		}
	}

	if err := app.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Store returns the database the application runs on.
func (app *Application) Store() store.Store {
	return app.db
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	ctx := context.Background()

	if n, err := app.db.Users().CountUsers(ctx); err == nil {
		app.logger.Info("database ready", "users", n)
	} else {
		app.logger.Warn("could not count users", "error", err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	app.logger.Info("Server is up and running", "port", app.cfg.Port, "version", BuildVersion)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down connect service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("connect service stopped")
	return nil
}

// OpenStore opens the database at path and applies migrations. It is
// shared by the server and the migrate command.
func OpenStore(path string) (*sqlite.Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

func (app *Application) initDatabase() error {
	db, err := OpenStore(app.cfg.DatabaseFile)
	if err != nil {
		return err
	}
	app.db = db.WithClock(app.clock.Now)

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() error {
	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}

	otpCodec, err := cryptox.NewCodec(otpCodecName, []byte(app.cfg.OTPSecret), app.cfg.OTPTTL,
		cryptox.WithClock(app.clock.Now))
	if err != nil {
		return fmt.Errorf("failed to create otp codec: %w", err)
	}
	tokenCodec, err := cryptox.NewCodec(tokenCodecName, []byte(app.cfg.TokenSecret), app.cfg.TokenTTL,
		cryptox.WithClock(app.clock.Now))
	if err != nil {
		return fmt.Errorf("failed to create token codec: %w", err)
	}

	templates, err := mail.NewTemplates()
	if err != nil {
		return fmt.Errorf("failed to load mail templates: %w", err)
	}

	validator, err := service.NewValidator(app.cfg.RegNoPattern)
	if err != nil {
		return fmt.Errorf("invalid REGNO_PATTERN: %w", err)
	}

	app.tokenService = &service.TokenService{Codec: tokenCodec}
	app.registrationService = &service.RegistrationService{
		Store:     app.db,
		Tokens:    app.tokenService,
		OTPCodec:  otpCodec,
		Mailer:    app.newDispatcher(),
		Templates: templates,
		Address:   service.InstitutionalAddress{Domain: app.cfg.MailDomain},
		Validator: validator,
		Passwords: cryptox.PasswordHasher{Pepper: pepper},
		From:      app.cfg.MailFrom,
		OTPLength: app.cfg.OTPLength,
	}
	app.profileService = &service.ProfileService{Store: app.db}

	return nil
}

func (app *Application) newDispatcher() mail.Dispatcher {
	if app.cfg.MailDriver == MailDriverLog {
		app.logger.Warn("mail driver is log: one-time codes are not delivered")
		return mail.LogDispatcher{}
	}

	app.logger.Info("mail driver is smtp", "host", app.cfg.SMTPHost, "port", app.cfg.SMTPPort)
	return mail.NewSMTPDispatcher(mail.SMTPConfig{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
	})
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.TokenService = app.tokenService
	router.RegistrationService = app.registrationService
	router.ProfileService = app.profileService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
