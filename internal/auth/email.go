package auth

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidEmail reports whether the string is a syntactically valid email
// address. Deliverability is not checked.
func ValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
