package errors

import (
	"net/http"

	"hris-payroll/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrAccountDisabled = apperror.New(
		apperror.CodeForbidden,
		"Account is disabled",
		http.StatusForbidden,
	)

	ErrDuplicateAccount = apperror.New(
		apperror.CodeConflict,
		"An account already exists for this employee or email",
		http.StatusConflict,
	)
)
