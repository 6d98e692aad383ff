package handlers

import (
	"net/http"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	"github.com/bhajian/gigbusters-profile/pkg/api"
)

// GetLocation godoc
// @Summary      Get a profile's location
// @Tags         location
// @Produce      json
// @Param        accountId path     string true "Account ID"
// @Success      200       {object} domain.LocationEntry
// @Security     CognitoAuth
// @Router       /{accountId}/location [get]
func (h *ProfileHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		unauthorized(w)
		return
	}
	loc, err := h.svc.GetLocation(r.Context(), userID, pathParam(r, "accountId"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if loc.Latitude == nil && loc.Longitude == nil {
		api.Success(w, http.StatusOK, emptyObject)
		return
	}
	api.Success(w, http.StatusOK, loc)
}

// SetLocation godoc
// @Summary      Replace a profile's location
// @Tags         location
// @Accept       json
// @Produce      json
// @Param        accountId path     string               true "Account ID"
// @Param        body      body     domain.LocationEntry true "Location"
// @Success      200       {object} api.MutationResponse
// @Failure      400       {object} api.ErrorResponse
// @Failure      404       {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       /{accountId}/location [put]
func (h *ProfileHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	var in domain.LocationEntry
	if err := decodeBody(r, &in, false); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	h.mutate(w, r, func(userID, accountID string) error {
		return h.svc.SetLocation(r.Context(), userID, accountID, in)
	})
}

// GetSetting godoc
// @Summary      Get a profile's settings
// @Tags         setting
// @Produce      json
// @Param        accountId path     string true "Account ID"
// @Success      200       {object} domain.SettingEntry
// @Security     CognitoAuth
// @Router       /{accountId}/setting [get]
func (h *ProfileHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		unauthorized(w)
		return
	}
	set, err := h.svc.GetSetting(r.Context(), userID, pathParam(r, "accountId"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if set.Notifications == nil && set.Language == "" && set.Country == "" {
		api.Success(w, http.StatusOK, emptyObject)
		return
	}
	api.Success(w, http.StatusOK, set)
}

// SetSetting godoc
// @Summary      Replace a profile's settings
// @Tags         setting
// @Accept       json
// @Produce      json
// @Param        accountId path     string              true "Account ID"
// @Param        body      body     domain.SettingEntry true "Settings"
// @Success      200       {object} api.MutationResponse
// @Failure      400       {object} api.ErrorResponse
// @Failure      404       {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       /{accountId}/setting [put]
func (h *ProfileHandler) SetSetting(w http.ResponseWriter, r *http.Request) {
	var in domain.SettingEntry
	if err := decodeBody(r, &in, false); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	h.mutate(w, r, func(userID, accountID string) error {
		return h.svc.SetSetting(r.Context(), userID, accountID, in)
	})
}

// ListSocial godoc
// @Summary      List a profile's social accounts
// @Tags         social
// @Produce      json
// @Param        accountId path    string true "Account ID"
// @Success      200       {array} domain.SocialEntry
// @Security     CognitoAuth
// @Router       /{accountId}/social [get]
func (h *ProfileHandler) ListSocial(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		unauthorized(w)
		return
	}
	links, err := h.svc.ListSocial(r.Context(), userID, pathParam(r, "accountId"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	api.Success(w, http.StatusOK, links)
}

// AddSocial godoc
// @Summary      Add or replace a social account link
// @Tags         social
// @Accept       json
// @Produce      json
// @Param        accountId path     string             true "Account ID"
// @Param        body      body     domain.SocialEntry true "Social account"
// @Success      200       {object} api.MutationResponse
// @Failure      400       {object} api.ErrorResponse
// @Failure      404       {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       /{accountId}/social [post]
func (h *ProfileHandler) AddSocial(w http.ResponseWriter, r *http.Request) {
	var in domain.SocialEntry
	if err := decodeBody(r, &in, false); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	h.mutate(w, r, func(userID, accountID string) error {
		return h.svc.AddSocial(r.Context(), userID, accountID, in)
	})
}

// DeleteSocial godoc
// @Summary      Remove a social account link
// @Tags         social
// @Produce      json
// @Param        accountId    path     string true "Account ID"
// @Param        snName       path     string true "Network name"
// @Param        socialUserId path     string true "User id on the network"
// @Success      200          {object} api.MutationResponse
// @Failure      404          {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       /{accountId}/social/{snName}/{socialUserId} [delete]
func (h *ProfileHandler) DeleteSocial(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(userID, accountID string) error {
		return h.svc.DeleteSocial(r.Context(), userID, accountID, pathParam(r, "snName"), pathParam(r, "socialUserId"))
	})
}

// ListCategory godoc
// @Summary      List a profile's interested categories
// @Tags         category
// @Produce      json
// @Param        accountId path    string true "Account ID"
// @Success      200       {array} string
// @Security     CognitoAuth
// @Router       /{accountId}/category [get]
func (h *ProfileHandler) ListCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		unauthorized(w)
		return
	}
	cats, err := h.svc.ListCategory(r.Context(), userID, pathParam(r, "accountId"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	api.Success(w, http.StatusOK, cats)
}

// AddCategory godoc
// @Summary      Add an interested category
// @Tags         category
// @Accept       json
// @Produce      json
// @Param        accountId path     string               true "Account ID"
// @Param        body      body     domain.CategoryInput true "Category"
// @Success      200       {object} api.MutationResponse
// @Failure      400       {object} api.ErrorResponse
// @Failure      404       {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       /{accountId}/category [post]
func (h *ProfileHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var in domain.CategoryInput
	if err := decodeBody(r, &in, false); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	h.mutate(w, r, func(userID, accountID string) error {
		return h.svc.AddCategory(r.Context(), userID, accountID, in.Category)
	})
}

// DeleteCategory godoc
// @Summary      Remove an interested category
// @Tags         category
// @Produce      json
// @Param        accountId  path     string true "Account ID"
// @Param        categoryId path     string true "Category"
// @Success      200        {object} api.MutationResponse
// @Failure      404        {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       /{accountId}/category/{categoryId} [delete]
func (h *ProfileHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(userID, accountID string) error {
		return h.svc.DeleteCategory(r.Context(), userID, accountID, pathParam(r, "categoryId"))
	})
}
