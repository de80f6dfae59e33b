package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries the user-facing messages for a rejected form, in
// the order the fields were declared.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// AuthenticationError is deliberately generic: it never says whether the
// email or the password was wrong.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "Incorrect email or password"
}

type NotAuthorizedError struct{}

func (e *NotAuthorizedError) Error() string {
	return "Not Authorized"
}

type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return "Email is already registered"
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// translateValidation maps validator tag failures onto the messages the forms
// show. Multiple missing fields collapse into a single "fill in all fields"
// line.
func translateValidation(err error) *ValidationError {
	verr := &ValidationError{}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		verr.Messages = append(verr.Messages, "Invalid input")
		return verr
	}

	seenRequired := false
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			if !seenRequired {
				verr.Messages = append(verr.Messages, "Please fill in all fields")
				seenRequired = true
			}
		case "email":
			verr.Messages = append(verr.Messages, "Please enter a valid email")
		case "min":
			verr.Messages = append(verr.Messages, "Password should be at least 6 characters")
		case "eqfield":
			verr.Messages = append(verr.Messages, "Passwords do not match")
		default:
			verr.Messages = append(verr.Messages, "Invalid value for "+fe.Field())
		}
	}

	return verr
}
