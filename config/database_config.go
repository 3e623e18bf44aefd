package config

import (
	"context"
	"fmt"

	"health-tracker-server/internal/apperror"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type Database struct {
	*sqlx.DB
}

func NewDatabaseConnection(dbDriver string, cfg *DatabaseConfig) (*Database, error) {
	database, err := sqlx.Connect(dbDriver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	database.SetMaxOpenConns(cfg.MaxOpenConns)
	database.SetMaxIdleConns(cfg.MaxIdleConns)
	database.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("ошибка пинга БД: %w", err)
	}

	zap.L().Info("подключение к БД успешно выполнено", zap.Int("max_open_conns", cfg.MaxOpenConns))
	return &Database{
		database,
	}, nil
}

// WithTx выполняет fn в транзакции: коммит при успехе, откат при ошибке или панике
func (db *Database) WithTx(ctx context.Context, fn func(ctx context.Context, tx sqlx.ExtContext) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return apperror.WrapUnavailable(err, "begin tx")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = apperror.WrapInternal(commitErr, "commit tx")
		}
	}()

	return fn(ctx, tx)
}

func (db *Database) Close() error {
	err := db.DB.Close()
	if err != nil {
		return fmt.Errorf("ошибка закрытия соединения с БД: %w", err)
	}

	return nil
}
