package companion

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const clockLayout = "15:04"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			_, _, err := ParseClock(fl.Field().String())
			return err == nil
		})
	})
	return validate
}

func validateRecord(record any) error {
	if err := getValidator().Struct(record); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

func validateEmail(email string) error {
	if err := getValidator().Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: invalid email %q", ErrValidation, email)
	}
	return nil
}

// ParseClock reads a zero padded "HH:MM" time of day.
func ParseClock(value string) (int, int, error) {
	if len(value) != len(clockLayout) {
		return 0, 0, fmt.Errorf("%w: time %q is not HH:MM", ErrValidation, value)
	}
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: time %q is not HH:MM", ErrValidation, value)
	}
	return t.Hour(), t.Minute(), nil
}
