package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"health-tracker-server/config"
	"health-tracker-server/internal/model"
	"health-tracker-server/internal/util"

	"github.com/redis/go-redis/v9"
)

// CacheRepository : read-through кэш постов блога
type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetPost(ctx context.Context, post *model.BlogPost) error {
	data, err := json.Marshal(post)
	if err != nil {
		return util.LogError("[CacheRepo] ошибка сериализации поста", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(post.ID), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("[CacheRepo] ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func (r *CacheRepository) GetPost(ctx context.Context, id string) (*model.BlogPost, error) {
	val, err := r.client.Client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("[CacheRepo] ошибка получения поста из Redis", err)
	}

	var post model.BlogPost
	if err := json.Unmarshal([]byte(val), &post); err != nil {
		return nil, util.LogError("[CacheRepo] ошибка десериализации поста из кэша", err)
	}
	return &post, nil
}

func (r *CacheRepository) DeletePost(ctx context.Context, id string) error {
	if err := r.client.Client.Del(ctx, r.key(id)).Err(); err != nil {
		return util.LogError("[CacheRepo] ошибка удаления поста из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(id string) string {
	return fmt.Sprintf("blog:%s", id)
}
