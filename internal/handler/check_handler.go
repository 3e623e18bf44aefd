package handler

import (
	"net/http"
	"time"

	"health-tracker-server/internal/model/requestresponse"
	"health-tracker-server/internal/ports"
)

type CheckHandler struct {
	ports.CheckService
	queryTimeout time.Duration
}

func NewCheckHandler(checkService ports.CheckService, queryTimeout time.Duration) *CheckHandler {
	return &CheckHandler{checkService, queryTimeout}
}

// ListChecks godoc
// @Summary Мои проверки риска
// @Tags Checks
// @Produce json
// @Param cursor query string false "next_cursor из предыдущего ответа"
// @Param limit query int false "Размер страницы, по умолчанию 20, максимум 100"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListChecksResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/checks [get]
func (h *CheckHandler) ListChecks(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}
	cursor, limit, ok := pageParams(w, r)
	if !ok {
		return
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	checks, next, err := h.CheckService.ListChecks(ctx, claims.UserID, cursor, limit)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	resp := requestresponse.ListChecksResponse{}
	resp.Response.Checks = nonNil(checks)
	resp.Response.NextCursor = next
	writeResponse(w, http.StatusOK, resp)
}

// CreateCheck godoc
// @Summary Новая проверка риска диабета
// @Description Сохраняет признаки и оценку риска. Если сервис оценки недоступен, запись сохраняется без неё.
// @Tags Checks
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateCheckRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.CheckResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/checks [post]
func (h *CheckHandler) CreateCheck(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}

	var req requestresponse.CreateCheckRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	check, err := h.CheckService.CreateCheck(ctx, claims.UserID, req.Input())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeResponse(w, http.StatusCreated, requestresponse.CheckResponse{Response: check})
}

// GetCheck godoc
// @Summary Проверка по id
// @Tags Checks
// @Produce json
// @Param id path string true "UUID проверки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CheckResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/checks/{id} [get]
func (h *CheckHandler) GetCheck(w http.ResponseWriter, r *http.Request) {
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

	check, err := h.CheckService.GetCheck(ctx, claims.UserID, id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeResponse(w, http.StatusOK, requestresponse.CheckResponse{Response: check})
}

// DeleteCheck godoc
// @Summary Удаление проверки
// @Tags Checks
// @Produce json
// @Param id path string true "UUID проверки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.DeletedResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/checks/{id} [delete]
func (h *CheckHandler) DeleteCheck(w http.ResponseWriter, r *http.Request) {
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

	if err := h.CheckService.DeleteCheck(ctx, claims.UserID, id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeResponse(w, http.StatusOK, deletedResponse(id))
}
