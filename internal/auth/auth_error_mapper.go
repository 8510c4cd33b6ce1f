package auth

import (
	"errors"

	autherrors "hris-payroll/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

func mapAccountStoreError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return autherrors.ErrDuplicateAccount
	}
	return err
}
