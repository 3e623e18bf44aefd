package model

import "time"

type BlogPost struct {
	ID            string    `db:"id" json:"id"`
	AuthorID      string    `db:"author_id" json:"author_id"`
	Title         string    `db:"title" json:"title"`
	Slug          string    `db:"slug" json:"slug"`
	Content       string    `db:"content" json:"content"`
	CoverImageKey *string   `db:"cover_image_key" json:"cover_image_key,omitempty"`
	Published     bool      `db:"published" json:"published"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`

	// CoverURL : presigned GET ссылка, в БД не хранится
	CoverURL string `db:"-" json:"cover_url,omitempty"`
}

type PostInput struct {
	Title     string
	Content   string
	Published bool
}

// PostUpdate : nil поле означает "не менять"
type PostUpdate struct {
	Title     *string
	Content   *string
	Published *bool
}

// PresignedPost : URL и поля multipart формы, файл передаётся последним полем "file"
type PresignedPost struct {
	URL    string
	Fields map[string]string
}

type CoverUpload struct {
	UploadURL string
	Fields    map[string]string
	ObjectKey string
	ExpiresIn time.Duration
}
