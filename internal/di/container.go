package di

import (
	"net/http"

	"github.com/bhajian/gigbusters-profile/internal/config"
	"github.com/bhajian/gigbusters-profile/internal/handlers"
	"github.com/bhajian/gigbusters-profile/internal/infrastructure/observability"
	"github.com/bhajian/gigbusters-profile/internal/service/enrichment"
	"github.com/bhajian/gigbusters-profile/internal/service/profile"
	"github.com/bhajian/gigbusters-profile/internal/service/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// APIContainer holds what the HTTP entry points need.
type APIContainer struct {
	Config   *config.Config
	Logger   *zap.Logger
	LogLevel zap.AtomicLevel
	Tracer   *observability.TracerProvider
	Metrics  *observability.Collector
	Profiles profile.Service
	Tokens   token.Service
}

// Router builds the HTTP router. auth resolves the caller: the Cognito authorizer claims
// in Lambda, a bearer JWT on the local server.
func (c *APIContainer) Router(auth func(http.Handler) http.Handler) *chi.Mux {
	return handlers.NewRouter(handlers.RouterConfig{
		Profiles:       c.Profiles,
		Tokens:         c.Tokens,
		Auth:           auth,
		Metrics:        c.Metrics,
		ServiceName:    c.Config.ServiceName,
		Version:        c.Config.Version,
		AllowedOrigins: c.Config.Server.AllowedOrigins,
		Logger:         c.Logger,
	})
}

// StreamContainer holds what the change-stream Lambda needs.
type StreamContainer struct {
	Config    *config.Config
	Logger    *zap.Logger
	Tracer    *observability.TracerProvider
	Processor *enrichment.Processor
}
