package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model"
	"health-tracker-server/internal/ports"
	"health-tracker-server/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var coverExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type BlogService struct {
	db         ports.Database
	posts      ports.BlogRepository
	cache      ports.BlogCache
	storage    ports.ObjectStorage
	presignTTL time.Duration
}

// NewBlogService : storage может быть nil, тогда обложки отключены
func NewBlogService(
	db ports.Database,
	posts ports.BlogRepository,
	cache ports.BlogCache,
	storage ports.ObjectStorage,
	presignTTL time.Duration,
) *BlogService {
	return &BlogService{
		db:         db,
		posts:      posts,
		cache:      cache,
		storage:    storage,
		presignTTL: presignTTL,
	}
}

func (s *BlogService) CreatePost(ctx context.Context, authorID string, input model.PostInput) (*model.BlogPost, error) {
	title := strings.TrimSpace(input.Title)
	if authorID == "" || title == "" || strings.TrimSpace(input.Content) == "" {
		return nil, apperror.NewValidation("title и content обязательны")
	}

	suffix, err := util.GenerateRandomHex(4)
	if err != nil {
		return nil, apperror.WrapInternal(err, "генерация slug")
	}

	post, err := s.posts.Create(ctx, s.db, &model.BlogPost{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		Title:     title,
		Slug:      slugify(title) + "-" + suffix,
		Content:   input.Content,
		Published: input.Published,
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// GetPost : сначала Redis, затем БД. Неопубликованный пост видит только автор.
func (s *BlogService) GetPost(ctx context.Context, viewerID, id string) (*model.BlogPost, error) {
	post, err := s.cache.GetPost(ctx, id)
	if err != nil {
		zap.L().Warn("[BlogService] кэш недоступен, читаем из БД", zap.String("post_id", id), zap.Error(err))
		post = nil
	}

	if post == nil {
		post, err = s.posts.FindByID(ctx, s.db, id)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetPost(ctx, post); err != nil {
			zap.L().Warn("[BlogService] не удалось положить пост в кэш", zap.String("post_id", id), zap.Error(err))
		}
	}

	if !post.Published && post.AuthorID != viewerID {
		return nil, apperror.ErrNotFound
	}

	s.attachCoverURL(ctx, post)
	return post, nil
}

func (s *BlogService) ListPosts(ctx context.Context, cursor string, limit int) ([]*model.BlogPost, string, error) {
	posts, next, err := s.posts.ListPublished(ctx, s.db, cursor, limit)
	if err != nil {
		return nil, "", err
	}

	for _, post := range posts {
		s.attachCoverURL(ctx, post)
	}
	return posts, next, nil
}

func (s *BlogService) UpdatePost(ctx context.Context, userID, id string, update model.PostUpdate) (*model.BlogPost, error) {
	post, err := s.ownedPost(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, apperror.NewValidation("title не может быть пустым")
		}
		post.Title = title
	}
	if update.Content != nil {
		if strings.TrimSpace(*update.Content) == "" {
			return nil, apperror.NewValidation("content не может быть пустым")
		}
		post.Content = *update.Content
	}
	if update.Published != nil {
		post.Published = *update.Published
	}

	updated, err := s.posts.Update(ctx, s.db, post)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	s.attachCoverURL(ctx, updated)
	return updated, nil
}

// DeletePost : вместе с постом удаляется и обложка в S3
func (s *BlogService) DeletePost(ctx context.Context, userID, id string) error {
	post, err := s.ownedPost(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, s.db, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)

	if post.CoverImageKey != nil && s.storage != nil {
		if err := s.storage.DeleteObject(ctx, *post.CoverImageKey); err != nil {
			zap.L().Warn("[BlogService] не удалось удалить обложку", zap.String("key", *post.CoverImageKey), zap.Error(err))
		}
	}
	return nil
}

// CoverUploadURL : presigned POST форма, ключ объекта сразу записывается в пост
func (s *BlogService) CoverUploadURL(ctx context.Context, userID, id, contentType string) (*model.CoverUpload, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("%w: хранилище обложек не настроено", apperror.ErrServiceUnavailable)
	}

	ext, ok := coverExtensions[contentType]
	if !ok {
		return nil, apperror.NewValidation("неподдерживаемый тип обложки")
	}

	if _, err := s.ownedPost(ctx, userID, id); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("blog/%s/cover%s", id, ext)
	form, err := s.storage.PresignPost(ctx, key, contentType, s.presignTTL)
	if err != nil {
		return nil, apperror.WrapUnavailable(err, "presign cover upload")
	}

	if err := s.posts.SetCoverKey(ctx, s.db, id, key); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	return &model.CoverUpload{
		UploadURL: form.URL,
		Fields:    form.Fields,
		ObjectKey: key,
		ExpiresIn: s.presignTTL,
	}, nil
}

func (s *BlogService) ownedPost(ctx context.Context, userID, id string) (*model.BlogPost, error) {
	post, err := s.posts.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, apperror.ErrForbidden
	}
	return post, nil
}

func (s *BlogService) invalidate(ctx context.Context, id string) {
	if err := s.cache.DeletePost(ctx, id); err != nil {
		zap.L().Warn("[BlogService] не удалось сбросить кэш поста", zap.String("post_id", id), zap.Error(err))
	}
}

func (s *BlogService) attachCoverURL(ctx context.Context, post *model.BlogPost) {
	if post.CoverImageKey == nil || s.storage == nil {
		return
	}
	url, err := s.storage.PresignGet(ctx, *post.CoverImageKey, s.presignTTL)
	if err != nil {
		zap.L().Warn("[BlogService] не удалось подписать ссылку на обложку", zap.String("post_id", post.ID), zap.Error(err))
		return
	}
	post.CoverURL = url
}

// slugify : латиница и цифры в нижнем регистре, остальное схлопывается в дефис
func slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "post"
	}
	if len(slug) > 80 {
		slug = strings.TrimSuffix(slug[:80], "-")
	}
	return slug
}
