package errors

import (
	"net/http"

	"hris-payroll/internal/shared/apperror"
)

var (
	ErrNoPayslipForMonth = apperror.New(
		apperror.CodeNotFound,
		"There's no payslip saved for this month",
		http.StatusNotFound,
	)

	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid month, expected Jan..Dec",
		http.StatusBadRequest,
	)

	ErrEmptySearch = apperror.New(
		apperror.CodeInvalidInput,
		"Search text is required",
		http.StatusBadRequest,
	)

	ErrUpstreamFetch = apperror.New(
		apperror.CodeBadUpstream,
		"Failed to fetch payroll data",
		http.StatusBadGateway,
	)
)
