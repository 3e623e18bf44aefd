package repository

import (
	"context"
	"time"

	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model"

	"github.com/jmoiron/sqlx"
)

const blogColumns = `id, author_id, title, slug, content, cover_image_key, published, created_at, updated_at`

type BlogRepository struct{}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{}
}

func (r *BlogRepository) Create(ctx context.Context, exec sqlx.ExtContext, post *model.BlogPost) (*model.BlogPost, error) {
	query := `
	INSERT INTO blog_posts (id, author_id, title, slug, content, published)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + blogColumns

	var created model.BlogPost
	err := sqlx.GetContext(ctx, exec, &created, query,
		post.ID, post.AuthorID, post.Title, post.Slug, post.Content, post.Published)
	if err != nil {
		return nil, dbError("[BlogRepo] ошибка вставки поста", err, nil)
	}

	return &created, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.BlogPost, error) {
	var post model.BlogPost
	err := sqlx.GetContext(ctx, exec, &post, `SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return nil, dbError("[BlogRepo] не удалось найти пост", err, apperror.ErrNotFound)
	}
	return &post, nil
}

// ListPublished : опубликованные посты от новых к старым с cursor-based пагинацией
func (r *BlogRepository) ListPublished(ctx context.Context, exec sqlx.ExtContext, cursor string, limit int) ([]*model.BlogPost, string, error) {
	query := `
        SELECT ` + blogColumns + `
        FROM blog_posts
        WHERE published AND ($1::timestamptz IS NULL OR created_at < $1)
        ORDER BY created_at DESC, id DESC
        LIMIT $2
    `

	cursorTime, err := parseCursor(cursor)
	if err != nil {
		return nil, "", err
	}
	limit = normalizeLimit(limit)

	posts := []*model.BlogPost{}
	if err := sqlx.SelectContext(ctx, exec, &posts, query, cursorTime, limit+1); err != nil {
		return nil, "", dbError("[BlogRepo] не удалось получить список постов", err, nil)
	}

	posts, next := page(posts, limit, func(p *model.BlogPost) time.Time { return p.CreatedAt })
	return posts, next, nil
}

func (r *BlogRepository) Update(ctx context.Context, exec sqlx.ExtContext, post *model.BlogPost) (*model.BlogPost, error) {
	query := `
		UPDATE blog_posts
		SET title = $2, content = $3, published = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + blogColumns

	var updated model.BlogPost
	err := sqlx.GetContext(ctx, exec, &updated, query, post.ID, post.Title, post.Content, post.Published)
	if err != nil {
		return nil, dbError("[BlogRepo] не удалось обновить пост", err, apperror.ErrNotFound)
	}

	return &updated, nil
}

func (r *BlogRepository) SetCoverKey(ctx context.Context, exec sqlx.ExtContext, id, key string) error {
	result, err := exec.ExecContext(ctx,
		`UPDATE blog_posts SET cover_image_key = $2, updated_at = NOW() WHERE id = $1`, id, key)
	if err != nil {
		return dbError("[BlogRepo] не удалось сохранить обложку", err, nil)
	}
	return expectAffected(result, "[BlogRepo] не удалось проверить обновление обложки")
}

func (r *BlogRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id string) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return dbError("[BlogRepo] не удалось удалить пост", err, nil)
	}
	return expectAffected(result, "[BlogRepo] не удалось проверить удаление поста")
}
