package repository

import (
	"context"
	"fmt"
	"time"

	"health-tracker-server/config"
	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/util"
)

// DenylistRepository : отозванные access токены, ключ живёт ровно до истечения токена
type DenylistRepository struct {
	client *config.RedisClient
}

func NewDenylistRepository(rdb *config.RedisClient) *DenylistRepository {
	return &DenylistRepository{rdb}
}

func (r *DenylistRepository) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Client.Set(ctx, r.key(token), 1, ttl).Err(); err != nil {
		return util.LogError("[DenylistRepo] не удалось отозвать токен", apperror.WrapUnavailable(err, "redis"))
	}
	return nil
}

func (r *DenylistRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	count, err := r.client.Client.Exists(ctx, r.key(token)).Result()
	if err != nil {
		return false, util.LogError("[DenylistRepo] не удалось проверить токен", apperror.WrapUnavailable(err, "redis"))
	}
	return count > 0, nil
}

func (r *DenylistRepository) key(token string) string {
	return fmt.Sprintf("denylist:%s", util.HashToken(token))
}
