package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/util"

	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"

	constraintUsersEmail    = "users_email_key"
	constraintUsersUsername = "users_username_key"
)

// dbError : переводит ошибку драйвера в apperror, notFound возвращается для sql.ErrNoRows
func dbError(op string, err error, notFound error) error {
	if notFound != nil && errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	if isConnectivityError(err) {
		return util.LogError(op, apperror.WrapUnavailable(err, "database"))
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		switch pqErr.Constraint {
		case constraintUsersEmail:
			return apperror.ErrEmailAlreadyExists
		case constraintUsersUsername:
			return apperror.ErrUsernameAlreadyExists
		}
	}

	return util.LogError(op, apperror.WrapInternal(err, "database"))
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

// isConnectivityError : обрыв соединения, таймаут, классы Postgres 08, 53 и 57
func isConnectivityError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08", "53", "57":
			return true
		}
	}

	return false
}

// expectAffected : ноль затронутых строк означает, что записи нет
func expectAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dbError(op, err, nil)
	}
	if rowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
