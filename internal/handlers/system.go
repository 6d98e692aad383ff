package handlers

import (
	"errors"
	"net/http"

	"github.com/bhajian/gigbusters-profile/internal/infrastructure/resilience"
	"github.com/bhajian/gigbusters-profile/internal/service/token"
	"github.com/bhajian/gigbusters-profile/pkg/api"

	"go.uber.org/zap"
)

// SystemHandler serves the unauthenticated endpoints.
type SystemHandler struct {
	version string
	tokens  token.Service
	logger  *zap.Logger
}

func NewSystemHandler(version string, tokens token.Service, logger *zap.Logger) *SystemHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SystemHandler{version: version, tokens: tokens, logger: logger}
}

// Version godoc
// @Summary      Service version
// @Tags         system
// @Produce      json
// @Success      200 {object} api.VersionResponse
// @Router       /version [get]
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, api.VersionResponse{Version: h.version})
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Token godoc
// @Summary      Exchange an authorization code for tokens
// @Description  The identity provider's JSON answer is returned unchanged.
// @Tags         system
// @Produce      json
// @Param        code query    string true "Authorization code"
// @Success      200  {object} map[string]interface{}
// @Failure      400  {object} api.ErrorResponse
// @Failure      503  {object} api.ErrorResponse
// @Router       /token [get]
func (h *SystemHandler) Token(w http.ResponseWriter, r *http.Request) {
	if h.tokens == nil {
		api.Error(w, http.StatusNotImplemented, "Token exchange is not configured")
		return
	}
	body, err := h.tokens.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		// The provider rejected the code; relay its answer.
		var se *resilience.StatusError
		if errors.As(err, &se) && se.StatusCode < http.StatusInternalServerError {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(se.StatusCode)
			w.Write([]byte(se.Body))
			return
		}
		handleServiceError(w, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
