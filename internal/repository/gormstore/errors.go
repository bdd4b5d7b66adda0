package gormstore

import (
	"context"
	stderrors "errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"

	"task-cli/internal/errors"
)

// PostgreSQL SQLSTATE codes that mean the row itself was rejected
var pgConstraintCodes = map[string]bool{
	"22001": true, // string_data_right_truncation
	"23502": true, // not_null_violation
	"23514": true, // check_violation
}

// MySQL server error numbers that mean the row itself was rejected
var mysqlConstraintCodes = map[uint16]bool{
	1048: true, // ER_BAD_NULL_ERROR
	1406: true, // ER_DATA_TOO_LONG
	3819: true, // ER_CHECK_CONSTRAINT_VIOLATED
}

// translateError converts GORM and driver errors into structured app errors
func translateError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return errors.FromContextError(operation, err)
	}

	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) && pgConstraintCodes[pgErr.Code] {
		return errors.NewValidationError("task violates store constraints", err).WithContext("operation", operation)
	}

	var myErr *mysql.MySQLError
	if stderrors.As(err, &myErr) && mysqlConstraintCodes[myErr.Number] {
		return errors.NewValidationError("task violates store constraints", err).WithContext("operation", operation)
	}

	return errors.NewDatabaseError(operation, err)
}
