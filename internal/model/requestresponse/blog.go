package requestresponse

import "health-tracker-server/internal/model"

// CreatePostRequest : тело запроса на создание поста
type CreatePostRequest struct {
	Title     string `json:"title" validate:"required,max=200" example:"Как снизить сахар"`
	Content   string `json:"content" validate:"required" example:"..."`
	Published bool   `json:"published" example:"true"`
}

// UpdatePostRequest : отсутствующие поля не меняются
type UpdatePostRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content   *string `json:"content,omitempty" validate:"omitempty,min=1"`
	Published *bool   `json:"published,omitempty"`
}

// CoverUploadRequest : тип загружаемой обложки
type CoverUploadRequest struct {
	ContentType string `json:"content_type" validate:"required,oneof=image/jpeg image/png image/webp" example:"image/png"`
}

// CoverUploadResponse : форма для POST загрузки обложки напрямую в S3
type CoverUploadResponse struct {
	Response struct {
		UploadURL string            `json:"upload_url"`
		Fields    map[string]string `json:"fields"`
		ObjectKey string            `json:"object_key" example:"blog/8c1c.../cover.png"`
		ExpiresIn int64             `json:"expires_in" example:"900"`
	} `json:"response"`
}

// PostResponse : один пост
type PostResponse struct {
	Response *model.BlogPost `json:"response"`
}

// ListPostsResponse : страница постов
type ListPostsResponse struct {
	Response struct {
		Posts      []*model.BlogPost `json:"posts"`
		NextCursor string            `json:"next_cursor,omitempty"`
	} `json:"response"`
}
