package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/config"
	"github.com/wortlab/deutschtext/internal/transport/middleware"
)

// tokenValidator validates access tokens for the auth middleware.
type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Logger     *slog.Logger
	CORS       config.CORSConfig
	Tokens     tokenValidator
	Auth       *AuthHandler
	Texts      *TextsHandler
	Vocabulary *VocabularyHandler
	Health     *HealthHandler
}

// NewRouter assembles the HTTP routes with the standard middleware
// stack. Routes under /api (except auth) require a valid bearer token.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", deps.Health.Live)
	mux.HandleFunc("GET /readyz", deps.Health.Ready)

	mux.HandleFunc("POST /api/auth/register", deps.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", deps.Auth.Login)

	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}
	mux.Handle("GET /api/auth/me", protected(deps.Auth.Me))
	mux.Handle("POST /api/process-text", protected(deps.Texts.Process))
	mux.Handle("POST /api/texts", protected(deps.Texts.Save))
	mux.Handle("GET /api/texts", protected(deps.Texts.List))
	mux.Handle("GET /api/texts/{id}", protected(deps.Texts.Get))
	mux.Handle("GET /api/vocabulary/stats", protected(deps.Vocabulary.Stats))
	mux.Handle("GET /api/vocabulary/{class}", protected(deps.Vocabulary.ByClass))
	mux.Handle("GET /api/words/practiced", protected(deps.Vocabulary.ListPracticed))
	mux.Handle("POST /api/words/practiced", protected(deps.Vocabulary.MarkPracticed))
	mux.Handle("GET /api/check-word", protected(deps.Vocabulary.CheckWord))

	stack := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Tokens),
	)
	return stack(mux)
}
