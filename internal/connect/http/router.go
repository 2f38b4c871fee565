package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/connect/internal/connect/service"
	"github.com/aussiebroadwan/connect/internal/connect/store"
	"github.com/aussiebroadwan/connect/pkg/httpx"
	"github.com/aussiebroadwan/connect/pkg/slogx"

	_ "github.com/aussiebroadwan/connect/api/connect" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	TokenService        *service.TokenService
	RegistrationService *service.RegistrationService
	ProfileService      *service.ProfileService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProfile()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpx.Chain(httpSwagger.Handler(),
		httpx.RateLimitByIP(httpx.PublicLimit),
	))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Connect++ API
//	@version		1.0.0
//	@description	Student sign-up with email OTP and public profiles.
//	@description
//	@description	Every response is a {status, message} envelope, extended per endpoint.
//	@description	Request bodies may be JSON or application/x-www-form-urlencoded.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/connect
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:4000
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	UserToken
//	@in							header
//	@name						Authorization
//	@description				User access token. Format: "Bearer {token}". Also accepted as the "token" header or query parameter.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	signUp := &SignUpHandler{RegistrationService: r.RegistrationService}
	verify := &SignUpVerifyHandler{RegistrationService: r.RegistrationService}

	// Every sign-up sends a mail, so limit hard by IP.
	r.Mux.Handle("POST /auth/sign-up",
		httpx.Chain(signUp,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Each verify is an OTP guess.
	r.Mux.Handle("POST /auth/sign-up/verify",
		httpx.Chain(verify,
			httpx.RateLimitByIP(httpx.StrictLimit),
			httpx.TokenMiddleware(r.TokenService.VerifyRegistration, httpx.BodyTokenExtractor("token")),
		),
	)
}

func (r *Router) registerProfile() {
	h := &PublicProfileHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("GET /profile/public",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.TokenMiddleware(r.TokenService.VerifySession, httpx.HeaderTokenExtractor),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /profile/public",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.TokenMiddleware(r.TokenService.VerifySession, httpx.BodyTokenExtractor("token")),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
