package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/murmurapp/murmur/internal/service"
	"github.com/murmurapp/murmur/internal/store"
	"github.com/murmurapp/murmur/pkg/httpx"
	"github.com/murmurapp/murmur/pkg/jwtx"
	"github.com/murmurapp/murmur/pkg/slogx"

	_ "github.com/murmurapp/murmur/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AccountService *service.AccountService
	MessageService *service.MessageService
	TokenService   *service.TokenService
	SuggestService *service.SuggestService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Murmur API
//	@version		0.1.0
//	@description	Anonymous-messaging service: register, verify your email with a
//	@description	one-time code, and share a profile link that accepts anonymous
//	@description	messages gated by a per-user acceptance flag.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerMessages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

func (r *Router) registerAccounts() {
	signUpHandler := &SignUpHandler{AccountService: r.AccountService}
	verifyHandler := &VerifyCodeHandler{AccountService: r.AccountService}
	checkHandler := &CheckUsernameHandler{AccountService: r.AccountService}
	signInHandler := &SignInHandler{
		AccountService: r.AccountService,
		TokenService:   r.TokenService,
	}

	// Account endpoints are public sign-up surface; strict limits keep
	// code brute-forcing and enumeration slow.
	r.Mux.Handle("POST /v1/sign-up",
		httpx.Chain(signUpHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/verify-code",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/sign-in",
		httpx.Chain(signInHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("GET /v1/check-username-unique",
		httpx.Chain(checkHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerMessages() {
	sendHandler := &SendMessageHandler{MessageService: r.MessageService}
	suggestHandler := &SuggestMessagesHandler{SuggestService: r.SuggestService}
	getHandler := &GetMessagesHandler{MessageService: r.MessageService}
	deleteHandler := &DeleteMessageHandler{MessageService: r.MessageService}
	acceptHandler := &AcceptMessagesHandler{MessageService: r.MessageService}

	// Anonymous write path - moderate rate limit by IP
	r.Mux.Handle("POST /v1/send-message",
		httpx.Chain(sendHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/suggest-messages",
		httpx.Chain(suggestHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// Owner endpoints - authenticated, lenient rate limit by user
	r.Mux.Handle("GET /v1/get-messages",
		httpx.Chain(getHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/delete-message",
		httpx.Chain(deleteHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/accept-messages",
		httpx.Chain(http.HandlerFunc(acceptHandler.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/accept-messages",
		httpx.Chain(http.HandlerFunc(acceptHandler.HandlePost),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
