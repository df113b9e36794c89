// Package phonevalidator wires this module's parsing and validation logic
// into github.com/go-playground/validator/v10 struct tags, the same
// RegisterValidation pattern the teacher package used for its
// validateCrmUrl tag, minus the gin binding glue this module has no use
// for.
package phonevalidator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/retailcrm/go-phonenumber"
	"github.com/retailcrm/go-phonenumber/metadata"
)

// Register adds the "e164" and "phonenumber" tags to v, backed by
// provider. "e164" requires the field to already be an E.164 string;
// "phonenumber" accepts anything Parse would, optionally constrained to a
// default region given as the tag parameter (e.g. validate:"phonenumber=US").
func Register(v *validator.Validate, provider metadata.Provider) error {
	if err := v.RegisterValidation("e164", validateE164(provider)); err != nil {
		return err
	}
	return v.RegisterValidation("phonenumber", validatePhoneNumber(provider))
}

func validateE164(provider metadata.Provider) validator.Func {
	return func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		if !strings.HasPrefix(raw, "+") {
			return false
		}
		n, err := phonenumber.Parse(provider, raw, "")
		if err != nil {
			return false
		}
		if phonenumber.Format(provider, n, phonenumber.FormatE164) != raw {
			return false
		}
		return phonenumber.IsValidNumber(provider, n)
	}
}

func validatePhoneNumber(provider metadata.Provider) validator.Func {
	return func(fl validator.FieldLevel) bool {
		defaultRegion := fl.Param()
		n, err := phonenumber.Parse(provider, fl.Field().String(), defaultRegion)
		if err != nil {
			return false
		}
		return phonenumber.IsValidNumber(provider, n)
	}
}
