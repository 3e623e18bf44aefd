package ports

import (
	"context"
	"time"

	"health-tracker-server/internal/model"
)

// ObjectStorage : S3 хранилище обложек блога
type ObjectStorage interface {
	PresignGet(ctx context.Context, key string, expire time.Duration) (string, error)
	PresignPost(ctx context.Context, key, contentType string, expire time.Duration) (*model.PresignedPost, error)
	DeleteObject(ctx context.Context, key string) error
}
