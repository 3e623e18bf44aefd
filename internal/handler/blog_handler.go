package handler

import (
	"net/http"
	"time"

	"health-tracker-server/internal/model"
	"health-tracker-server/internal/model/requestresponse"
	"health-tracker-server/internal/ports"
)

type BlogHandler struct {
	ports.BlogService
	queryTimeout time.Duration
}

func NewBlogHandler(blogService ports.BlogService, queryTimeout time.Duration) *BlogHandler {
	return &BlogHandler{blogService, queryTimeout}
}

// ListPosts godoc
// @Summary Лента опубликованных постов
// @Description Новые посты первыми, постраничная выдача по курсору
// @Tags Blog
// @Produce json
// @Param cursor query string false "next_cursor из предыдущего ответа"
// @Param limit query int false "Размер страницы, по умолчанию 20, максимум 100"
// @Success 200 {object} requestresponse.ListPostsResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/blogs [get]
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	cursor, limit, ok := pageParams(w, r)
	if !ok {
		return
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	posts, next, err := h.BlogService.ListPosts(ctx, cursor, limit)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	resp := requestresponse.ListPostsResponse{}
	resp.Response.Posts = nonNil(posts)
	resp.Response.NextCursor = next
	writeResponse(w, http.StatusOK, resp)
}

// GetPost godoc
// @Summary Пост по id
// @Description Черновик доступен только автору
// @Tags Blog
// @Produce json
// @Param id path string true "UUID поста"
// @Param Authorization header string false "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.PostResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/blogs/{id} [get]
func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	post, err := h.BlogService.GetPost(ctx, viewerID(r), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeResponse(w, http.StatusOK, requestresponse.PostResponse{Response: post})
}

// CreatePost godoc
// @Summary Создание поста
// @Tags Blog
// @Accept json
// @Produce json
// @Param body body requestresponse.CreatePostRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.PostResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/blogs [post]
func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}

	var req requestresponse.CreatePostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	post, err := h.BlogService.CreatePost(ctx, claims.UserID, model.PostInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeResponse(w, http.StatusCreated, requestresponse.PostResponse{Response: post})
}

// UpdatePost godoc
// @Summary Обновление поста
// @Description Только автор. Отсутствующие поля не меняются.
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "UUID поста"
// @Param body body requestresponse.UpdatePostRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.PostResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/blogs/{id} [put]
func (h *BlogHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req requestresponse.UpdatePostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	post, err := h.BlogService.UpdatePost(ctx, claims.UserID, id, model.PostUpdate{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeResponse(w, http.StatusOK, requestresponse.PostResponse{Response: post})
}

// DeletePost godoc
// @Summary Удаление поста
// @Description Только автор, обложка удаляется из S3
// @Tags Blog
// @Produce json
// @Param id path string true "UUID поста"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.DeletedResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/blogs/{id} [delete]
func (h *BlogHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	if err := h.BlogService.DeletePost(ctx, claims.UserID, id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeResponse(w, http.StatusOK, deletedResponse(id))
}

// CoverUpload godoc
// @Summary Ссылка для загрузки обложки
// @Description Возвращает URL и поля presigned POST формы. Клиент отправляет multipart форму напрямую в S3, файл последним полем file. S3 отклоняет другой Content-Type и файлы больше 5 МБ.
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "UUID поста"
// @Param body body requestresponse.CoverUploadRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CoverUploadResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 503 {object} requestresponse.ErrorResponse "Хранилище не настроено"
// @Router /api/blogs/{id}/cover [post]
func (h *BlogHandler) CoverUpload(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req requestresponse.CoverUploadRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	upload, err := h.BlogService.CoverUploadURL(ctx, claims.UserID, id, req.ContentType)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	resp := requestresponse.CoverUploadResponse{}
	resp.Response.UploadURL = upload.UploadURL
	resp.Response.Fields = upload.Fields
	resp.Response.ObjectKey = upload.ObjectKey
	resp.Response.ExpiresIn = int64(upload.ExpiresIn / time.Second)
	writeResponse(w, http.StatusOK, resp)
}

func deletedResponse(id string) requestresponse.DeletedResponse {
	resp := requestresponse.DeletedResponse{}
	resp.Response.ID = id
	resp.Response.Deleted = true
	return resp
}

// nonNil : пустая страница кодируется как [], а не null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
