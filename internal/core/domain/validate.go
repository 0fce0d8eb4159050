package domain

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks struct tags on a domain value (enum literals, required ids).
// Enum failures wrap ErrInvalidEnum, everything else wraps ErrInvalidInput.
func Validate(v interface{}) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fields := make([]string, 0, len(verrs))
	enum := false
	for _, fe := range verrs {
		if fe.Tag() == "oneof" {
			enum = true
		}
		fields = append(fields, fmt.Sprintf("%s(%s)", fe.Namespace(), fe.Tag()))
	}

	if enum {
		return fmt.Errorf("%w: %s", ErrInvalidEnum, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, ", "))
}
