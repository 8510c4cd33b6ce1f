package errors

import (
	"net/http"

	"hris-payroll/internal/shared/apperror"
)

// Store failures stay a generic 500 on the wire; the distinct codes here are
// for logs and tests only.
var (
	ErrEmployeeReferenceInvalid = apperror.New(
		apperror.CodeInternalError,
		"Error adding data",
		http.StatusInternalServerError,
	)
)
