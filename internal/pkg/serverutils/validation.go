package serverutils

import (
	"fmt"

	"regboard-be/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a decoded request body against its validate tags.
// Failures come back as *apperror.ValidationError so the error handler can
// answer 400 with the field list.
func ValidateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("field %s failed on the %s rule", fe.Field(), fe.Tag()))
	}
	return &apperror.ValidationError{Errors: msgs}
}
