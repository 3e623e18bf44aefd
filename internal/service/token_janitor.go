package service

import (
	"context"
	"time"

	"health-tracker-server/internal/ports"

	"go.uber.org/zap"
)

const defaultCleanupInterval = time.Hour

// TokenJanitor : периодически удаляет просроченные refresh токены
type TokenJanitor struct {
	db       ports.Database
	tokens   ports.RefreshTokenRepository
	interval time.Duration
	now      func() time.Time
}

func NewTokenJanitor(db ports.Database, tokens ports.RefreshTokenRepository, interval time.Duration) *TokenJanitor {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	return &TokenJanitor{
		db:       db,
		tokens:   tokens,
		interval: interval,
		now:      time.Now,
	}
}

// Run : блокируется до отмены ctx
func (j *TokenJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := j.Sweep(ctx); err != nil {
				zap.L().Warn("[TokenJanitor] очистка не удалась", zap.Error(err))
			}
		}
	}
}

func (j *TokenJanitor) Sweep(ctx context.Context) (int64, error) {
	deleted, err := j.tokens.DeleteExpired(ctx, j.db, j.now())
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		zap.L().Info("[TokenJanitor] удалены просроченные refresh токены", zap.Int64("count", deleted))
	}
	return deleted, nil
}
