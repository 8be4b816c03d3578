package validation

import (
	"regexp"

	"careerportal-api/models"
)

const (
	RuleMissingFields     Rule = "MissingFields"
	RuleInvalidEmail      Rule = "InvalidEmail"
	RuleInvalidPhone      Rule = "InvalidPhone"
	RuleInvalidCardNumber Rule = "InvalidCardNumber"
	RuleInvalidCvv        Rule = "InvalidCvv"
)

// emailPart excludes '@' and every character browsers treat as whitespace,
// which is wider than RE2's \s: it adds \v, the Unicode space separators,
// the line and paragraph separators and the BOM.
const emailPart = `[^\s\v\p{Zs}\x{2028}\x{2029}\x{feff}@]+`

var (
	emailPattern      = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)
	phonePattern      = regexp.MustCompile(`^[0-9]{9}$`)
	cardNumberPattern = regexp.MustCompile(`^[0-9]{16}$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3}$`)
)

var paymentRules = map[string]*Error{
	"payment_email": {Rule: RuleInvalidEmail, Message: "Invalid email format"},
	"phone9":        {Rule: RuleInvalidPhone, Message: "Phone number must be exactly 9 digits"},
	"card16":        {Rule: RuleInvalidCardNumber, Message: "Card number must be exactly 16 digits"},
	"cvv3":          {Rule: RuleInvalidCvv, Message: "CVV must be exactly 3 digits"},
}

var errMissingFields = &Error{Rule: RuleMissingFields, Message: "All fields are required"}

// ValidatePayment applies the payment rules in order: presence of all six
// fields first, then email, phone, card number and CVV formats. Only the
// first failure is reported.
func ValidatePayment(req *models.PaymentRequest) error {
	verrs, err := fieldErrors(req)
	if err != nil {
		return err
	}
	if len(verrs) == 0 {
		return nil
	}

	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return errMissingFields
		}
	}

	fe := verrs[0]
	rule, ok := paymentRules[fe.Tag()]
	if !ok {
		return &Error{Rule: Rule(fe.Tag()), Field: fe.Field(), Message: "Invalid " + fe.Field()}
	}
	return &Error{Rule: rule.Rule, Field: fe.Field(), Message: rule.Message}
}
