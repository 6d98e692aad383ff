// Package handlers exposes the profile service over HTTP.
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/bhajian/gigbusters-profile/internal/middleware"
	"github.com/bhajian/gigbusters-profile/pkg/api"
	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// emptyObject is written where a lookup found nothing; clients expect {} rather than nulls.
var emptyObject = struct{}{}

func getUserID(r *http.Request) (string, bool) {
	return middleware.UserIDFromContext(r.Context())
}

// pathParam returns the unescaped chi URL parameter.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// decodeBody reads JSON into dst. An empty body leaves dst untouched when optional is set.
func decodeBody(r *http.Request, dst interface{}, optional bool) error {
	if err := api.Decode(r, dst); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return appErrors.NewValidation("Invalid request body")
	}
	return nil
}

// handleServiceError converts service errors to appropriate HTTP responses
func handleServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case appErrors.IsValidation(err):
		logger.Debug("validation error", zap.Error(err))
		api.Error(w, http.StatusBadRequest, appErrors.MessageOf(err))
	case appErrors.IsNotFound(err):
		logger.Debug("not found", zap.Error(err))
		api.Error(w, http.StatusNotFound, appErrors.MessageOf(err))
	case appErrors.IsConflict(err):
		logger.Info("conflict", zap.Error(err))
		api.Error(w, http.StatusConflict, appErrors.MessageOf(err))
	case appErrors.IsUnavailable(err), errors.Is(err, context.DeadlineExceeded):
		logger.Warn("dependency unavailable", zap.Error(err))
		api.Error(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		logger.Error("internal error", zap.Error(err))
		api.Error(w, http.StatusInternalServerError, "An internal error occurred")
	}
}

func unauthorized(w http.ResponseWriter) {
	api.Error(w, http.StatusUnauthorized, "Authentication required")
}
