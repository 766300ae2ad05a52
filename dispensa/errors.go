package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	// ErrNoChanges reports an update that matched a record but left it as is.
	ErrNoChanges         = errors.New("no changes made")
	ErrInsufficientStock = &inputError{detail: "not enough stock available"}
)

// inputError is an ErrInvalidInput whose detail is safe to show to clients.
type inputError struct {
	detail string
}

func (e *inputError) Error() string {
	return ErrInvalidInput.Error() + ": " + e.detail
}

func (e *inputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(format string, args ...any) error {
	return &inputError{detail: fmt.Sprintf(format, args...)}
}

// inputDetail returns the client-facing detail of an invalid input error,
// without the operation prefixes added while it was wrapped.
func inputDetail(err error) string {
	var inputErr *inputError
	if errors.As(err, &inputErr) {
		return inputErr.detail
	}
	return ""
}

// describeValidation flattens validator errors into a single ErrInvalidInput
// naming every failing field by its json name.
func describeValidation(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return invalidInput("%s", err.Error())
	}

	fields := lo.Map(validationErrs, func(fe validator.FieldError, _ int) string {
		if fe.Param() != "" {
			return fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	})

	return invalidInput("%s", strings.Join(fields, ", "))
}
