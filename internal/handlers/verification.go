package handlers

import (
	"net/http"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	"github.com/bhajian/gigbusters-profile/internal/validation"
)

// RequestValidation godoc
// @Summary      Send a verification code to the profile's phone or email
// @Tags         verification
// @Accept       json
// @Produce      json
// @Param        accountId path     string                        true "Account ID"
// @Param        body      body     domain.ValidationRequestInput true "Channel"
// @Success      200       {object} api.MutationResponse
// @Failure      400       {object} api.ErrorResponse
// @Failure      404       {object} api.ErrorResponse
// @Failure      503       {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       /{accountId}/requestValidation [post]
func (h *ProfileHandler) RequestValidation(w http.ResponseWriter, r *http.Request) {
	var in domain.ValidationRequestInput
	if err := decodeBody(r, &in, false); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if err := validation.GetValidator().Validate(in); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	kind, _ := domain.ParseVerificationKind(in.Type)
	h.mutate(w, r, func(userID, accountID string) error {
		return h.svc.RequestValidation(r.Context(), userID, accountID, kind)
	})
}

// Validate godoc
// @Summary      Confirm a verification code
// @Tags         verification
// @Accept       json
// @Produce      json
// @Param        accountId path     string               true "Account ID"
// @Param        body      body     domain.ValidateInput true "Code"
// @Success      200       {object} api.MutationResponse
// @Failure      400       {object} api.ErrorResponse
// @Failure      404       {object} api.ErrorResponse
// @Security     CognitoAuth
// @Router       /{accountId}/validate [post]
func (h *ProfileHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var in domain.ValidateInput
	if err := decodeBody(r, &in, false); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if err := validation.GetValidator().Validate(in); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	kind, _ := domain.ParseVerificationKind(in.Type)
	h.mutate(w, r, func(userID, accountID string) error {
		return h.svc.Validate(r.Context(), userID, accountID, kind, in.Code)
	})
}
