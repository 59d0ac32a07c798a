// Package services contains the business logic layer for the portfolio API.
package services

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// minMessageLength is the minimum length accepted for comment bodies and
// contact messages. The site's forms historically disagreed between 5
// and 10; 10 is applied uniformly on the server.
const minMessageLength = 10

var validate = validator.New()

// isValidEmail checks the address against standard email syntax.
func isValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// isBlank reports whether the string is empty or whitespace only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
