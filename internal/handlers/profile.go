package handlers

import (
	"net/http"
	"strconv"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	"github.com/bhajian/gigbusters-profile/internal/repository"
	"github.com/bhajian/gigbusters-profile/internal/service/profile"
	"github.com/bhajian/gigbusters-profile/pkg/api"

	"go.uber.org/zap"
)

// ProfileHandler serves the profile resource and its sub-resources.
type ProfileHandler struct {
	svc    profile.Service
	logger *zap.Logger
}

func NewProfileHandler(svc profile.Service, logger *zap.Logger) *ProfileHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileHandler{svc: svc, logger: logger}
}

// ListProfiles godoc
// @Summary      List the caller's profiles
// @Tags         profile
// @Produce      json
// @Success      200 {array}  domain.Profile
// @Failure      401 {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       / [get]
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		unauthorized(w)
		return
	}
	profiles, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	api.Success(w, http.StatusOK, profiles)
}

// CreateProfile godoc
// @Summary      Create a profile owned by the caller
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body body     domain.ProfileInput true "Profile"
// @Success      201  {object} domain.Profile
// @Failure      400  {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       / [post]
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		unauthorized(w)
		return
	}
	var in domain.ProfileInput
	if err := decodeBody(r, &in, false); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	p, err := h.svc.Create(r.Context(), userID, in)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	api.Success(w, http.StatusCreated, p)
}

// EditProfile godoc
// @Summary      Replace a profile's identity and contact fields
// @Description  The account id comes from the path, or from the body on PUT /.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        accountId path     string                  true "Account ID"
// @Param        body      body     domain.EditProfileInput true "Profile"
// @Success      200       {object} domain.Profile
// @Failure      400       {object} api.ErrorResponse
// @Failure      404       {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       /{accountId} [put]
func (h *ProfileHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		unauthorized(w)
		return
	}
	var in domain.EditProfileInput
	if err := decodeBody(r, &in, false); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if id := pathParam(r, "accountId"); id != "" {
		in.AccountID = id
	}
	if in.AccountID == "" {
		api.Error(w, http.StatusBadRequest, "accountId is required")
		return
	}
	p, err := h.svc.Edit(r.Context(), userID, in)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	api.Success(w, http.StatusOK, p)
}

// GetProfile godoc
// @Summary      Get a profile
// @Description  Returns {} when the profile does not exist or belongs to another user.
// @Tags         profile
// @Produce      json
// @Param        accountId path     string true "Account ID"
// @Success      200       {object} domain.Profile
// @Security     CognitoAuth
// @Router       /{accountId} [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		unauthorized(w)
		return
	}
	p, err := h.svc.Get(r.Context(), userID, pathParam(r, "accountId"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if p.IsZero() {
		api.Success(w, http.StatusOK, emptyObject)
		return
	}
	api.Success(w, http.StatusOK, p)
}

// DeleteProfile godoc
// @Summary      Delete a profile, its photos and links
// @Tags         profile
// @Produce      json
// @Param        accountId path     string true "Account ID"
// @Success      200       {object} api.MutationResponse
// @Failure      404       {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       /{accountId} [delete]
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(userID, accountID string) error {
		return h.svc.Delete(r.Context(), userID, accountID)
	})
}

// DeactivateProfile godoc
// @Summary      Deactivate a profile
// @Tags         profile
// @Produce      json
// @Param        accountId path     string true "Account ID"
// @Success      200       {object} api.MutationResponse
// @Failure      404       {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       /{accountId}/deactivate [put]
func (h *ProfileHandler) DeactivateProfile(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(userID, accountID string) error {
		return h.svc.Deactivate(r.Context(), userID, accountID)
	})
}

// Discover godoc
// @Summary      Page through other users' active profiles
// @Tags         discover
// @Produce      json
// @Param        limit  query    int    false "Page size (max 100)"
// @Param        cursor query    string false "Cursor from the previous page"
// @Success      200    {object} domain.DiscoverPage
// @Failure      400    {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       /discover [get]
func (h *ProfileHandler) Discover(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		unauthorized(w)
		return
	}
	page := repository.Pagination{Cursor: r.URL.Query().Get("cursor")}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			api.Error(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		page.Limit = limit
	}
	out, err := h.svc.Discover(r.Context(), userID, page)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	api.Success(w, http.StatusOK, out)
}

// mutate runs fn for the caller and path account and acknowledges success.
func (h *ProfileHandler) mutate(w http.ResponseWriter, r *http.Request, fn func(userID, accountID string) error) {
	userID, ok := getUserID(r)
	if !ok {
		unauthorized(w)
		return
	}
	if err := fn(userID, pathParam(r, "accountId")); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	api.Success(w, http.StatusOK, api.MutationResponse{Success: true})
}
