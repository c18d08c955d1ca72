package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/tokend/internal/tokend/domain"
	"github.com/aussiebroadwan/tokend/internal/tokend/service"
	"github.com/aussiebroadwan/tokend/pkg/httpx"
	"github.com/aussiebroadwan/tokend/pkg/jwtx"
	"github.com/aussiebroadwan/tokend/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/aussiebroadwan/tokend/api/tokend" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// ReadinessCheck reports whether a dependency can serve requests.
type ReadinessCheck func(ctx context.Context) error

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	limits       httpx.RateLimits
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	readiness    map[string]ReadinessCheck

	TokenService    *service.TokenService
	RegistryService *service.RegistryService
	SessionService  *service.SessionService
}

func NewRouter(
	verifier jwtx.Verifier,
	limits httpx.RateLimits,
	buildVersion string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		limits:       limits,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		readiness:    make(map[string]ReadinessCheck),
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// AddReadinessCheck registers a dependency probed by /readyz.
func (r *Router) AddReadinessCheck(name string, check ReadinessCheck) {
	r.readiness[name] = check
}

func (r *Router) ApplyRoutes() {
	r.registerOAuth2()
	r.registerTokens()
	r.registerRegistry()
	r.registerSessions()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			tokend
//	@version		0.1.0
//	@description	Issues and checks stateless bearer tokens. A token is a signed record of
//	@description	app, user and session claims; decoding it needs no storage unless secret
//	@description	or session checks are enabled.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/tokend
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	OperatorAuth
//	@in							header
//	@name						Authorization
//	@description				HS256 operator JWT. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// operator wraps h with operator authentication, a scope requirement and
// the management rate limit.
func (r *Router) operator(h http.Handler, scope string) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(scope),
		httpx.RateLimitBySubject(r.limits.Management),
	)
}

func (r *Router) registerOAuth2() {
	// POST /token - only the refresh grant exists; creation is an operator call
	r.Mux.Handle("POST /v1/oauth2/token",
		httpx.Chain(&TokenHandler{TokenService: r.TokenService},
			httpx.RateLimitByIP(r.limits.Refresh),
		),
	)

	r.Mux.Handle("POST /v1/oauth2/introspect",
		httpx.Chain(&IntrospectHandler{TokenService: r.TokenService},
			httpx.RateLimitByIP(r.limits.Introspect),
		),
	)

	r.Mux.Handle("GET /v1/tokeninfo",
		httpx.Chain(&TokenInfoHandler{TokenService: r.TokenService},
			httpx.RateLimitByIP(r.limits.Introspect),
		),
	)
}

func (r *Router) registerTokens() {
	h := &CreateTokenHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/tokens", r.operator(h, domain.ScopeTokensWrite))
}

func (r *Router) registerRegistry() {
	h := &RegistryHandler{RegistryService: r.RegistryService}

	r.Mux.Handle("POST /v1/apps", r.operator(http.HandlerFunc(h.CreateApp), domain.ScopeRegistryWrite))
	r.Mux.Handle("GET /v1/apps", r.operator(http.HandlerFunc(h.ListApps), domain.ScopeRegistryWrite))
	r.Mux.Handle("POST /v1/apps/{id}/secret", r.operator(http.HandlerFunc(h.RotateAppSecret), domain.ScopeRegistryWrite))
	r.Mux.Handle("DELETE /v1/apps/{id}", r.operator(http.HandlerFunc(h.DeleteApp), domain.ScopeRegistryWrite))
	r.Mux.Handle("PUT /v1/users/{id}/secret", r.operator(http.HandlerFunc(h.RotateUserSecret), domain.ScopeRegistryWrite))
}

func (r *Router) registerSessions() {
	h := &SessionHandler{SessionService: r.SessionService}

	r.Mux.Handle("POST /v1/sessions", r.operator(http.HandlerFunc(h.Open), domain.ScopeRegistryWrite))
	r.Mux.Handle("DELETE /v1/sessions/{id}", r.operator(http.HandlerFunc(h.Close), domain.ScopeRegistryWrite))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.readiness))
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
