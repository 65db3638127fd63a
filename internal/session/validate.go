package session

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/quickbank/quickbank/internal/models"
)

var validate = validator.New()

// FieldError is a single client-side validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors blocks a remote call before it is attempted.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

// ValidateCredentials checks a login form. Returns nil when valid.
func ValidateCredentials(creds models.Credentials) error {
	if errs := collect(validate.Struct(creds)); errs != nil {
		return errs
	}
	return nil
}

// ValidateSignup checks a registration form, including the password policy:
// at least 8 characters, an uppercase letter and a digit. The confirm field
// must match before anything is sent.
func ValidateSignup(data models.SignupData) error {
	errs := collect(validate.Struct(data))
	if !hasUpperAndDigit(data.Password) {
		errs = append(errs, FieldError{
			Field:   "Password",
			Message: "Password must contain an uppercase letter and a number",
		})
	}
	if errs != nil {
		return errs
	}
	return nil
}

func collect(err error) ValidationErrors {
	if err == nil {
		return nil
	}
	var errs ValidationErrors
	for _, fe := range err.(validator.ValidationErrors) {
		errs = append(errs, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Must be at least " + fe.Param() + " characters"
	case "eqfield":
		return "Passwords do not match"
	default:
		return "Invalid value"
	}
}

func hasUpperAndDigit(s string) bool {
	var upper, digit bool
	for _, r := range s {
		if unicode.IsUpper(r) {
			upper = true
		}
		if unicode.IsDigit(r) {
			digit = true
		}
	}
	return upper && digit
}
