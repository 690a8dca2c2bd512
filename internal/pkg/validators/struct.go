package validators

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// shared is built once; validator.Validate caches struct metadata and is
// safe for concurrent use.
var shared = sync.OnceValues(func() (*validator.Validate, error) {
	validate := validator.New()
	if err := Register(validate); err != nil {
		return nil, fmt.Errorf("failed to register validations: %w", err)
	}
	return validate, nil
})

// ValidateStruct validates s with the shared validator and flattens field
// errors into "Field: X, Tag: Y" messages.
func ValidateStruct(s interface{}) error {
	validate, err := shared()
	if err != nil {
		return err
	}

	err = validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
