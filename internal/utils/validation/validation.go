package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var accountCodePattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

var (
	once     sync.Once
	instance *validator.Validate
)

// IsAccountCode reports whether code is a dot-segmented run of digits, e.g. 1.1.02.001.
func IsAccountCode(code string) bool {
	return accountCodePattern.MatchString(code)
}

func validateAccountCode(fl validator.FieldLevel) bool {
	return IsAccountCode(fl.Field().String())
}

func register(v *validator.Validate) error {
	return v.RegisterValidation("account_code", validateAccountCode)
}

// Validator returns the shared validator with the ledger's custom tags registered.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		if err := register(instance); err != nil {
			panic(err)
		}
	})
	return instance
}

// RegisterGinValidations adds the custom tags to gin's binding validator so request DTOs can use them.
func RegisterGinValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return register(v)
}

// Struct validates s and reports failures as apperrors.ErrValidation naming each failing field.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, ", "))
}
