package validation

import (
	"fmt"

	"careerportal-api/models"
)

const (
	RuleMissingStatus Rule = "MissingStatus"
	RuleStatusTooLong Rule = "StatusTooLong"
)

func ValidateStatusUpdate(req *models.StatusUpdateRequest) error {
	verrs, err := fieldErrors(req)
	if err != nil {
		return err
	}
	if len(verrs) == 0 {
		return nil
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return &Error{Rule: RuleMissingStatus, Field: fe.Field(), Message: "Status is required"}
	case "max":
		return &Error{
			Rule:    RuleStatusTooLong,
			Field:   fe.Field(),
			Message: fmt.Sprintf("Status must not exceed %s characters", fe.Param()),
		}
	}
	return &Error{Rule: Rule(fe.Tag()), Field: fe.Field(), Message: "Invalid status"}
}
