package repository

import (
	"context"
	"database/sql"

	"health-tracker-server/internal/migrations"
	"health-tracker-server/internal/util"

	"github.com/pressly/goose/v3"
)

var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations : применяет встроенные миграции
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return util.LogError("[Migrations] неизвестный диалект", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return util.LogError("[Migrations] ошибка применения миграций", err)
	}
	return nil
}
