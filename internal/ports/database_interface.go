package ports

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Database : пул соединений и запуск функции в транзакции
type Database interface {
	sqlx.ExtContext
	WithTx(ctx context.Context, fn func(ctx context.Context, tx sqlx.ExtContext) error) error
}
