package handlers

import (
	"net/http"

	"github.com/bhajian/gigbusters-profile/internal/infrastructure/observability"
	"github.com/bhajian/gigbusters-profile/internal/middleware"
	"github.com/bhajian/gigbusters-profile/internal/service/profile"
	"github.com/bhajian/gigbusters-profile/internal/service/token"
	"github.com/bhajian/gigbusters-profile/pkg/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// RouterConfig carries everything the HTTP surface needs.
type RouterConfig struct {
	Profiles profile.Service
	Tokens   token.Service
	// Auth places the caller's user id on the request context.
	Auth           func(http.Handler) http.Handler
	Metrics        *observability.Collector
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Logger         *zap.Logger
}

// NewRouter builds the chi router for both the Lambda adapter and the local server.
func NewRouter(cfg RouterConfig) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.AccessLog(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	if cfg.Metrics != nil {
		r.Use(observability.MetricsMiddleware(cfg.Metrics))
	}
	r.Use(observability.TracingMiddleware(cfg.ServiceName))

	system := NewSystemHandler(cfg.Version, cfg.Tokens, logger)
	r.Get("/version", system.Version)
	r.Get("/health", system.Health)
	r.Get("/token", system.Token)
	r.Get("/swagger/doc.json", api.SwaggerHandler())
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler())
	}

	h := NewProfileHandler(cfg.Profiles, logger)
	r.Group(func(r chi.Router) {
		if cfg.Auth != nil {
			r.Use(cfg.Auth)
		}

		r.Get("/", h.ListProfiles)
		r.Post("/", h.CreateProfile)
		r.Put("/", h.EditProfile)
		r.Get("/discover", h.Discover)

		r.Route("/{accountId}", func(r chi.Router) {
			r.Get("/", h.GetProfile)
			r.Put("/", h.EditProfile)
			r.Delete("/", h.DeleteProfile)
			r.Put("/deactivate", h.DeactivateProfile)

			r.Get("/photo", h.ListPhotos)
			r.Post("/photo", h.AddPhoto)
			r.Get("/photo/{photoId}", h.GetPhoto)
			r.Put("/photo/{photoId}", h.SetMainPhoto)
			r.Delete("/photo/{photoId}", h.DeletePhoto)

			r.Get("/location", h.GetLocation)
			r.Put("/location", h.SetLocation)
			r.Get("/setting", h.GetSetting)
			r.Put("/setting", h.SetSetting)

			r.Get("/social", h.ListSocial)
			r.Post("/social", h.AddSocial)
			r.Delete("/social/{snName}/{socialUserId}", h.DeleteSocial)

			r.Get("/category", h.ListCategory)
			r.Post("/category", h.AddCategory)
			r.Delete("/category/{categoryId}", h.DeleteCategory)

			r.Post("/requestValidation", h.RequestValidation)
			r.Post("/validate", h.Validate)
		})
	})

	return r
}
