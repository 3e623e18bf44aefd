package ports

import (
	"context"

	"health-tracker-server/internal/model"
)

// BlogCache : Redis слой, промах кэша это (nil, nil)
type BlogCache interface {
	SetPost(ctx context.Context, post *model.BlogPost) error
	GetPost(ctx context.Context, id string) (*model.BlogPost, error)
	DeletePost(ctx context.Context, id string) error
}
