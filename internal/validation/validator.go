// Package validation wraps go-playground/validator with the rules request bodies need.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// Validator validates request structs and reports failures as validation AppErrors.
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance.
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a validator with json field names and custom rules.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("language", languageTag)

	return &Validator{validate: v}
}

// Validate checks i against its struct tags.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// languageTag accepts well-formed BCP 47 tags such as "en", "fr-CA".
func languageTag(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	_, err := language.Parse(s)
	return err == nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return appErrors.NewValidation(err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, message(e))
	}
	return appErrors.NewValidation(strings.Join(msgs, "; "))
}

func message(e validator.FieldError) string {
	field := strings.TrimPrefix(e.Namespace(), firstSegment(e.Namespace())+".")
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "e164":
		return fmt.Sprintf("%s must be an E.164 phone number", field)
	case "latitude", "longitude":
		return fmt.Sprintf("%s must be a valid %s", field, e.Tag())
	case "language":
		return fmt.Sprintf("%s must be a BCP 47 language tag", field)
	case "iso3166_1_alpha2":
		return fmt.Sprintf("%s must be an ISO 3166-1 alpha-2 country code", field)
	case "numeric":
		return fmt.Sprintf("%s must be numeric", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, e.Tag())
	}
}

func firstSegment(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[:i]
	}
	return ns
}
