// Package validation checks submitted forms before anything reaches storage.
//
// Rules are declared as struct tags on the request models and evaluated by
// go-playground/validator. Failures are reported as *Error values carrying
// the rule that failed and the message shown to the client.
package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Rule identifies which check rejected a submission.
type Rule string

// Error is a client input error. It is always safe to show Message to the
// caller.
type Error struct {
	Rule    Rule
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	patterns := map[string]*regexp.Regexp{
		"payment_email": emailPattern,
		"phone9":        phonePattern,
		"card16":        cardNumberPattern,
		"cvv3":          cvvPattern,
	}
	for tag, re := range patterns {
		if err := v.RegisterValidation(tag, matches(re)); err != nil {
			panic(fmt.Sprintf("validation: register %s: %v", tag, err))
		}
	}
	return v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// fieldErrors runs the struct tags and returns the per-field failures in
// declaration order. A nil slice means the struct is valid.
func fieldErrors(s interface{}) (validator.ValidationErrors, error) {
	err := validate.Struct(s)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, nil
	}
	return nil, err
}
