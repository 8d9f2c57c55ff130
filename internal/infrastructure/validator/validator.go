package validator

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	usecasecontract "github.com/danielmek/hotelhub/internal/usecase/contract"
)

const (
	usernameMinLen = 2
	usernameMaxLen = 20
	passwordMinLen = 6
)

// AppValidator implements the usecase validator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase validator
// interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateUsername checks the username length and character constraints.
func (av *AppValidator) ValidateUsername(username string) error {
	if err := av.validate.Var(username, "required"); err != nil {
		return fmt.Errorf("username is required")
	}
	n := utf8.RuneCountInString(username)
	if n < usernameMinLen || n > usernameMaxLen {
		return fmt.Errorf("username must be %d-%d characters", usernameMinLen, usernameMaxLen)
	}
	return nil
}

// ValidatePassword checks the minimum password length.
func (av *AppValidator) ValidatePassword(password string) error {
	if err := av.validate.Var(password, "required"); err != nil {
		return fmt.Errorf("password is required")
	}
	if utf8.RuneCountInString(password) < passwordMinLen {
		return fmt.Errorf("password must be at least %d characters", passwordMinLen)
	}
	return nil
}
