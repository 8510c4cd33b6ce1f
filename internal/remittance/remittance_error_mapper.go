package remittance

import (
	"errors"

	remittanceerrors "hris-payroll/internal/remittance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23503: employee_number points at no known employee.
		if pgErr.Code == "23503" {
			return remittanceerrors.ErrEmployeeReferenceInvalid
		}
	}

	return err
}
