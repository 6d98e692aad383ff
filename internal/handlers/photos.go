package handlers

import (
	"net/http"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	"github.com/bhajian/gigbusters-profile/pkg/api"
)

// ListPhotos godoc
// @Summary      List a profile's photos
// @Tags         photo
// @Produce      json
// @Param        accountId path    string true "Account ID"
// @Success      200       {array} domain.PhotoEntry
// @Security     CognitoAuth
// @Router       /{accountId}/photo [get]
func (h *ProfileHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		unauthorized(w)
		return
	}
	photos, err := h.svc.ListPhotos(r.Context(), userID, pathParam(r, "accountId"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	api.Success(w, http.StatusOK, photos)
}

// AddPhoto godoc
// @Summary      Reserve a photo and get an upload URL
// @Description  The body is optional. PUT the image bytes to uploadUrl before it expires.
// @Tags         photo
// @Accept       json
// @Produce      json
// @Param        accountId path     string            true  "Account ID"
// @Param        body      body     domain.PhotoInput false "Photo options"
// @Success      201       {object} domain.PhotoUpload
// @Failure      404       {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       /{accountId}/photo [post]
func (h *ProfileHandler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		unauthorized(w)
		return
	}
	var in domain.PhotoInput
	if err := decodeBody(r, &in, true); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	up, err := h.svc.AddPhoto(r.Context(), userID, pathParam(r, "accountId"), in)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	api.Success(w, http.StatusCreated, up)
}

// GetPhoto godoc
// @Summary      Get one photo
// @Tags         photo
// @Produce      json
// @Param        accountId path     string true "Account ID"
// @Param        photoId   path     string true "Photo ID"
// @Success      200       {object} domain.PhotoEntry
// @Security     CognitoAuth
// @Router       /{accountId}/photo/{photoId} [get]
func (h *ProfileHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		unauthorized(w)
		return
	}
	photo, err := h.svc.GetPhoto(r.Context(), userID, pathParam(r, "accountId"), pathParam(r, "photoId"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if photo.PhotoID == "" {
		api.Success(w, http.StatusOK, emptyObject)
		return
	}
	api.Success(w, http.StatusOK, photo)
}

// SetMainPhoto godoc
// @Summary      Make a photo the main photo
// @Tags         photo
// @Produce      json
// @Param        accountId path     string true "Account ID"
// @Param        photoId   path     string true "Photo ID"
// @Success      200       {object} api.MutationResponse
// @Failure      404       {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       /{accountId}/photo/{photoId} [put]
func (h *ProfileHandler) SetMainPhoto(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(userID, accountID string) error {
		return h.svc.SetMainPhoto(r.Context(), userID, accountID, pathParam(r, "photoId"))
	})
}

// DeletePhoto godoc
// @Summary      Delete a photo
// @Tags         photo
// @Produce      json
// @Param        accountId path     string true "Account ID"
// @Param        photoId   path     string true "Photo ID"
// @Success      200       {object} api.MutationResponse
// @Failure      404       {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       /{accountId}/photo/{photoId} [delete]
func (h *ProfileHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(userID, accountID string) error {
		return h.svc.DeletePhoto(r.Context(), userID, accountID, pathParam(r, "photoId"))
	})
}
