package profile

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	"github.com/bhajian/gigbusters-profile/internal/repository"
	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"go.uber.org/zap"
)

// generateCode returns a uniformly random, zero-padded numeric code.
func generateCode(digits int) (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n.Int64()), nil
}

// RequestValidation issues a fresh code for the channel and delivers it: SMS for phone,
// an EmailVerificationRequested event for email. Any earlier code is replaced.
func (s *service) RequestValidation(ctx context.Context, userID, accountID string, kind domain.VerificationKind) (err error) {
	ctx, done := s.start(ctx, "RequestValidation", userID, accountID)
	defer func() { done(err) }()

	p, err := s.ownedProfile(ctx, userID, accountID)
	if err != nil {
		return err
	}
	if p == nil {
		return appErrors.NewNotFound(MsgProfileMissing)
	}

	var target string
	switch kind {
	case domain.VerifyPhone:
		if p.Phone == nil || p.Phone.Phone == "" {
			return appErrors.NewValidation("the profile has no phone number")
		}
		target = p.Phone.Phone
	case domain.VerifyEmail:
		if p.Email == nil || p.Email.Email == "" {
			return appErrors.NewValidation("the profile has no email address")
		}
		target = p.Email.Email
	default:
		return appErrors.NewValidation("type must be phone or email")
	}

	code, err := s.newCode(s.cfg.CodeDigits)
	if err != nil {
		return appErrors.NewInternal("failed to generate code", err)
	}
	expiresAt := s.now().Add(s.cfg.CodeTTL)
	if err := s.repo.SetVerificationCode(ctx, userID, accountID, kind, code, expiresAt); err != nil {
		if repository.IsConditionFailed(err) {
			return appErrors.NewNotFound(MsgProfileMissing)
		}
		return appErrors.Wrap(err, "failed to store verification code")
	}

	if kind == domain.VerifyPhone {
		if err := s.sms.SendSMS(ctx, target, "Your Verification Code is: "+code); err != nil {
			return err
		}
	} else {
		ev := domain.NewEvent(domain.EventEmailVerificationRequested, accountID, userID, map[string]interface{}{
			"email":     target,
			"code":      code,
			"expiresAt": expiresAt,
		})
		if err := s.events.Publish(ctx, ev); err != nil {
			return appErrors.Wrap(err, "failed to queue verification email")
		}
	}

	s.metrics.RecordCodeIssued(string(kind))
	s.logger.Info("verification code issued", zap.String("accountID", accountID), zap.String("channel", string(kind)))
	return nil
}

// Validate marks the channel verified when code matches the pending, unexpired code.
func (s *service) Validate(ctx context.Context, userID, accountID string, kind domain.VerificationKind, code string) (err error) {
	ctx, done := s.start(ctx, "Validate", userID, accountID)
	defer func() { done(err) }()

	if code == "" {
		return appErrors.NewValidation("code is required")
	}
	p, err := s.ownedProfile(ctx, userID, accountID)
	if err != nil {
		return err
	}
	if p == nil {
		return appErrors.NewNotFound(MsgNotFoundOrNotOwner)
	}

	err = s.repo.ConfirmVerification(ctx, userID, accountID, kind, code, s.now())
	if repository.IsConditionFailed(err) {
		return appErrors.NewValidation(MsgNotVerified)
	}
	if err != nil {
		return appErrors.Wrap(err, "failed to confirm verification")
	}
	return nil
}
