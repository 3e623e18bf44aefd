package ports

import (
	"context"

	"health-tracker-server/internal/model"

	"github.com/jmoiron/sqlx"
)

// BlogRepository : SQL слой
type BlogRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, post *model.BlogPost) (*model.BlogPost, error)
	FindByID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.BlogPost, error)
	ListPublished(ctx context.Context, exec sqlx.ExtContext, cursor string, limit int) ([]*model.BlogPost, string, error)
	Update(ctx context.Context, exec sqlx.ExtContext, post *model.BlogPost) (*model.BlogPost, error)
	SetCoverKey(ctx context.Context, exec sqlx.ExtContext, id, key string) error
	Delete(ctx context.Context, exec sqlx.ExtContext, id string) error
}

type BlogService interface {
	CreatePost(ctx context.Context, authorID string, input model.PostInput) (*model.BlogPost, error)
	GetPost(ctx context.Context, viewerID, id string) (*model.BlogPost, error)
	ListPosts(ctx context.Context, cursor string, limit int) ([]*model.BlogPost, string, error)
	UpdatePost(ctx context.Context, userID, id string, update model.PostUpdate) (*model.BlogPost, error)
	DeletePost(ctx context.Context, userID, id string) error
	CoverUploadURL(ctx context.Context, userID, id, contentType string) (*model.CoverUpload, error)
}
