package repository

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"testing"

	"health-tracker-server/internal/apperror"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestDBError_Classification(t *testing.T) {
	notFound := errors.New("missing")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"no rows", sql.ErrNoRows, notFound},
		{"deadline", context.DeadlineExceeded, apperror.ErrServiceUnavailable},
		{"conn done", sql.ErrConnDone, apperror.ErrServiceUnavailable},
		{"net error", &net.OpError{Op: "dial", Err: errors.New("refused")}, apperror.ErrServiceUnavailable},
		{"connection exception", &pq.Error{Code: "08006"}, apperror.ErrServiceUnavailable},
		{"too many connections", &pq.Error{Code: "53300"}, apperror.ErrServiceUnavailable},
		{"admin shutdown", &pq.Error{Code: "57P01"}, apperror.ErrServiceUnavailable},
		{"duplicate email", &pq.Error{Code: "23505", Constraint: "users_email_key"}, apperror.ErrEmailAlreadyExists},
		{"duplicate username", &pq.Error{Code: "23505", Constraint: "users_username_key"}, apperror.ErrUsernameAlreadyExists},
		{"other unique", &pq.Error{Code: "23505", Constraint: "blog_posts_slug_key"}, apperror.ErrInternal},
		{"syntax", &pq.Error{Code: "42601"}, apperror.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, dbError("[Test] op", tt.err, notFound), tt.target)
		})
	}
}

func TestDBError_DuplicatesShareParent(t *testing.T) {
	err := dbError("[Test] op", &pq.Error{Code: "23505", Constraint: "users_username_key"}, nil)

	assert.ErrorIs(t, err, apperror.ErrDuplicateUser)
	assert.NotErrorIs(t, err, apperror.ErrEmailAlreadyExists)
}

func TestDBError_InternalHidesCause(t *testing.T) {
	cause := &pq.Error{Code: "42601", Message: "syntax error"}

	err := dbError("[Test] op", cause, nil)

	var pqErr *pq.Error
	assert.False(t, errors.As(err, &pqErr))
	assert.Contains(t, err.Error(), "syntax error")
}
