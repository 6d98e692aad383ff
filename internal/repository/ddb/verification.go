package ddb

import (
	"context"
	"time"

	"github.com/bhajian/gigbusters-profile/internal/domain"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
)

type verificationAttrs struct {
	contact   string
	code      string
	expiresAt string
}

func attrsFor(kind domain.VerificationKind) verificationAttrs {
	if kind == domain.VerifyEmail {
		return verificationAttrs{contact: "Email", code: "EmailCode", expiresAt: "EmailCodeExpiresAt"}
	}
	return verificationAttrs{contact: "Phone", code: "PhoneCode", expiresAt: "PhoneCodeExpiresAt"}
}

// SetVerificationCode stores a fresh code and marks the channel unverified. The contact
// value must already be present.
func (r *Repository) SetVerificationCode(ctx context.Context, userID, accountID string, kind domain.VerificationKind, code string, expiresAt time.Time) error {
	a := attrsFor(kind)
	update := expression.Set(expression.Name(a.contact+".Verified"), expression.Value(false)).
		Set(expression.Name(a.code), expression.Value(code)).
		Set(expression.Name(a.expiresAt), expression.Value(expiresAt.Unix()))
	cond := ownerCondition(userID).And(expression.AttributeExists(expression.Name(a.contact)))
	return r.updateProfileIf(ctx, accountID, update, cond, "failed to set verification code")
}

// ConfirmVerification compares and consumes the code in a single conditional write.
func (r *Repository) ConfirmVerification(ctx context.Context, userID, accountID string, kind domain.VerificationKind, code string, now time.Time) error {
	a := attrsFor(kind)
	update := expression.Set(expression.Name(a.contact+".Verified"), expression.Value(true)).
		Remove(expression.Name(a.code)).
		Remove(expression.Name(a.expiresAt))
	cond := ownerCondition(userID).
		And(expression.Name(a.code).Equal(expression.Value(code))).
		And(expression.Name(a.expiresAt).GreaterThan(expression.Value(now.Unix())))
	return r.updateProfileIf(ctx, accountID, update, cond, "failed to confirm verification")
}
